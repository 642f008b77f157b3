package bot

// Reply is the outbound payload of one handled message. MediaPath, when set,
// points at a generated chart artifact on disk; the transport layer turns it
// into a public media URL. The two-field discriminated form replaces any
// guessing from filename suffixes.
type Reply struct {
	Text      string
	MediaPath string
}

// TextReply builds a plain-text reply.
func TextReply(text string) Reply {
	return Reply{Text: text}
}

// MediaReply builds a text-plus-attachment reply.
func MediaReply(text, mediaPath string) Reply {
	return Reply{Text: text, MediaPath: mediaPath}
}

// IsMedia reports whether the reply carries an attachment.
func (r Reply) IsMedia() bool {
	return r.MediaPath != ""
}
