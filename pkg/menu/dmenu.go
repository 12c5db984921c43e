package menu

type Dmenu struct {
	args []string
}

func NewDmenu(args []string) *Dmenu {
	return &Dmenu{args: args}
}

func (d *Dmenu) Name() string {
	return "dmenu"
}

func (d *Dmenu) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, d.args...)
	args = append(args, "-p", prompt)

	return runDmenuStyle("dmenu", args, options)
}

func (d *Dmenu) Input(prompt, def string) (string, error) {
	args := append([]string{}, d.args...)
	args = append(args, "-p", prompt)

	return runInputStyle("dmenu", args, def)
}
