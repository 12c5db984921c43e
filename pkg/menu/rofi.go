package menu

type Rofi struct {
	args []string
}

func NewRofi(args []string) *Rofi {
	return &Rofi{args: args}
}

func (r *Rofi) Name() string {
	return "rofi"
}

func (r *Rofi) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, r.args...)
	args = append(args, "-dmenu", "-p", prompt)

	return runDmenuStyle("rofi", args, options)
}

func (r *Rofi) Input(prompt, def string) (string, error) {
	args := append([]string{}, r.args...)
	args = append(args, "-dmenu", "-p", prompt, "-l", "0")
	if def != "" {
		args = append(args, "-filter", def)
	}

	return runInputStyle("rofi", args, def)
}
