package domain

// Doc is a reference document surfaced by concept tag after a wrong answer,
// and browsable from the docs view.
type Doc struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Concept string `yaml:"concept"`
	Content string `yaml:"content"`
}
