package templates

// Section is one rendered flow on the page.
type Section struct {
	Label string
	Frame string
}
