package demo

// Catalog returns the full registry of demos in presentation order:
// message sends first, then the template lifecycle, then ping.
func Catalog() *Registry {
	return NewRegistry().
		Register(plainSend).
		Register(fullOptions).
		Register(attachments).
		Register(mergeVars).
		Register(scheduled).
		Register(storeTemplate).
		Register(sendTemplate).
		Register(renderTemplate).
		Register(templateInfo).
		Register(deleteTemplate).
		Register(ping)
}
