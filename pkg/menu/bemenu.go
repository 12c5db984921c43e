package menu

type Bemenu struct {
	args []string
}

func NewBemenu(args []string) *Bemenu {
	return &Bemenu{args: args}
}

func (b *Bemenu) Name() string {
	return "bemenu"
}

func (b *Bemenu) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, b.args...)
	args = append(args, "-p", prompt)

	return runDmenuStyle("bemenu", args, options)
}

func (b *Bemenu) Input(prompt, def string) (string, error) {
	args := append([]string{}, b.args...)
	args = append(args, "-p", prompt)

	return runInputStyle("bemenu", args, def)
}
