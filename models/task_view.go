package models

// DecryptFailedPlaceholder is shown in place of a field whose ciphertext could
// not be decrypted. One unreadable record must not prevent the rest of a
// listing from rendering, so the failure is carried per record instead of
// aborting the batch.
const DecryptFailedPlaceholder = "[decryption failed]"

// FieldResult is the outcome of decrypting a single encrypted field: either
// the recovered plaintext, or a failure that the presentation layer renders
// as a placeholder.
type FieldResult struct {
	Text   string
	Failed bool
}

// FieldOK wraps successfully decrypted text.
func FieldOK(text string) FieldResult {
	return FieldResult{Text: text}
}

// FieldFailed marks the field as unreadable.
func FieldFailed() FieldResult {
	return FieldResult{Failed: true}
}

// Display returns the text to render: the plaintext on success, the failure
// placeholder otherwise.
func (f FieldResult) Display() string {
	if f.Failed {
		return DecryptFailedPlaceholder
	}
	return f.Text
}

// TaskItem is a task prepared for display: the raw record plus the per-field
// decryption outcome and the decrypted checklist. When Description.Failed is
// set the checklist is left empty.
type TaskItem struct {
	Task        Task
	Description FieldResult
	Checklist   []ChecklistItem
}

// ChecklistItem pairs a checklist entry with its decrypted label.
type ChecklistItem struct {
	Entry ChecklistEntry
	Label FieldResult
}
