package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"clockctl/internal/config"
)

// ConfigCommand contains flags for the `config` command line command. Without
// arguments it prints the whole configuration; with a key it prints that
// value; with a key and a value it sets and persists it.
type ConfigCommand struct {
	Args struct {
		Key   string `positional-arg-name:"<key>" description:"api-token, base-url, workspace, user or billable"`
		Value string `positional-arg-name:"<value>"`
	} `positional-args:"true"`
}

// Execute executes the config command.
func (command *ConfigCommand) Execute(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch {
	case command.Args.Key == "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case command.Args.Value == "":
		value, err := cfg.Get(command.Args.Key)
		if err != nil {
			return err
		}
		fmt.Println(value)
	default:
		if err := cfg.Set(command.Args.Key, command.Args.Value); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s set\n", command.Args.Key)
	}
	return nil
}
