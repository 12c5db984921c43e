package menu

type Fuzzel struct {
	args []string
}

func NewFuzzel(args []string) *Fuzzel {
	return &Fuzzel{args: args}
}

func (f *Fuzzel) Name() string {
	return "fuzzel"
}

func (f *Fuzzel) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--dmenu", "--prompt", prompt+" ")

	return runDmenuStyle("fuzzel", args, options)
}

func (f *Fuzzel) Input(prompt, def string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--dmenu", "--prompt", prompt+" ")

	return runInputStyle("fuzzel", args, def)
}
