package ggpaint

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	// NoticeRotatedCrop is raised when a crop is attempted on a rotated
	// floating layer. The crop is not performed.
	NoticeRotatedCrop NoticeKind = iota

	// NoticeDecodeFailed is raised when an inserted image cannot be decoded.
	NoticeDecodeFailed
)

// String returns a short name for the notice kind.
func (k NoticeKind) String() string {
	switch k {
	case NoticeRotatedCrop:
		return "rotated-crop"
	case NoticeDecodeFailed:
		return "decode-failed"
	default:
		return "unknown"
	}
}

// Notice is a precondition violation the user should be told about. The
// operation that raised it has been aborted and editor state is unchanged.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// Notifier receives notices. It runs on the editor's goroutine and should
// not call back into the editor.
type Notifier func(Notice)

// logNotice is the default Notifier.
func logNotice(n Notice) {
	Logger().Warn("ggpaint: "+n.Message, "kind", n.Kind.String(), "err", n.Err)
}
