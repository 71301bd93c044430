package shell

import "context"

func (it *Interpreter) hostFact(ctx context.Context, args []string) Outcome {
	switch args[0] {
	case "--EOL":
		it.term.Println("%q", it.host.EOL())
	case "--cpus":
		cpus := it.host.CPUs()
		it.term.Println("Total CPUs: %d", len(cpus))
		for i, cpu := range cpus {
			it.term.Println("%d: %s at %.2fGHz", i+1, cpu.Model, cpu.MHz/1000)
		}
	case "--homedir":
		home, err := it.host.HomeDir()
		if err != nil {
			return it.failf(err, "os: homedir")
		}
		it.term.Println("%s", home)
	case "--username":
		name, err := it.host.Username()
		if err != nil {
			return it.failf(err, "os: username")
		}
		it.term.Println("%s", name)
	case "--architecture":
		it.term.Println("%s", it.host.Architecture())
	default:
		return InvalidInput
	}
	return Success
}
