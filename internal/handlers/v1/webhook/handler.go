package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tally-networks/finance-bot/internal/bot"
	"github.com/tally-networks/finance-bot/internal/logging"
)

// dispatcher routes one inbound message to a command handler.
type dispatcher interface {
	Dispatch(ctx context.Context, text, sender string) bot.Reply
}

// formatter turns a Reply into the transport payload.
type formatter interface {
	Format(r bot.Reply) (string, error)
}

// SignatureValidator checks the transport's request signature.
// twilio-go's client.RequestValidator satisfies it.
type SignatureValidator interface {
	Validate(url string, params map[string]string, expectedSignature string) bool
}

// Handler serves the inbound message webhook: form-encoded request in,
// TwiML response out, synchronously.
type Handler struct {
	Dispatcher dispatcher
	Formatter  formatter
	// Validator is optional; when nil, signatures are not checked.
	Validator  SignatureValidator
	PublicHost string
}

func NewHandler(d dispatcher, f formatter, validator SignatureValidator, publicHost string) *Handler {
	return &Handler{
		Dispatcher: d,
		Formatter:  f,
		Validator:  validator,
		PublicHost: publicHost,
	}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "POST" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("webhook: method not POST")
	}

	if err := req.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("webhook: malformed form body")
	}

	if h.Validator != nil && !h.validSignature(req) {
		w.WriteHeader(http.StatusForbidden)
		return errors.New("webhook: signature validation failed")
	}

	sender := strings.TrimPrefix(req.PostFormValue("From"), "whatsapp:")
	text := strings.ToLower(req.PostFormValue("Body"))
	logData.AddData("sender", sender)

	reply := h.Dispatcher.Dispatch(req.Context(), text, sender)
	logData.AddData("mediaReply", reply.IsMedia())

	payload, err := h.Formatter.Format(reply)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(payload))
	return err
}

func (h *Handler) validSignature(req *http.Request) bool {
	params := make(map[string]string, len(req.PostForm))
	for key, values := range req.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	url := "https://" + h.PublicHost + req.URL.RequestURI()
	return h.Validator.Validate(url, params, req.Header.Get("X-Twilio-Signature"))
}
