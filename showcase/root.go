// The showcase runs interactive terminal demos of the aria widget
// stores, one bubbletea model per store package.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-aria/aria/pkg/tui"
)

// Config carries the shared demo configuration resolved from flags,
// environment, and the optional keymap file.
type Config struct {
	Keymap tui.Keymap
	Styles tui.Styles
}

// dispatcherAware lets demos receive a UI-loop dispatcher once the
// program exists. Demos with timers implement it.
type dispatcherAware interface {
	setDispatcher(fn func(func()))
}

var rootCmd = &cobra.Command{
	Use:   "showcase [demo]",
	Short: "Interactive demos of the aria widget stores",
	Long: `Showcase runs terminal demos of the aria widget stores: listbox,
combobox, tabs, toolbar, grid, tooltip, and form.

Run "showcase list" to see all demos, or "showcase <name>" to start one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "listbox"
		if len(args) > 0 {
			name = args[0]
		}
		demo, ok := findDemo(name)
		if !ok {
			return fmt.Errorf("unknown demo %q, try \"showcase list\"", name)
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if path := viper.GetString("log"); path != "" {
			f, err := tea.LogToFile(path, "showcase")
			if err != nil {
				return err
			}
			defer f.Close()
		}
		model := demo.New(cfg)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if aware, ok := model.(dispatcherAware); ok {
			aware.setDispatcher(tui.ProgramDispatcher(p))
		}
		_, err = p.Run()
		return err
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range demos {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s — %s\n", d.Name, d.Title, d.Subtitle)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("keymap", "", "path to a YAML keymap file")
	rootCmd.PersistentFlags().String("log", "", "write debug logs to this file")
	viper.BindPFlag("keymap", rootCmd.PersistentFlags().Lookup("keymap"))
	viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))
	viper.SetEnvPrefix("ARIA")
	viper.AutomaticEnv()
	rootCmd.AddCommand(listCmd)
}

func loadConfig() (Config, error) {
	km, err := tui.LoadKeymapOptional(viper.GetString("keymap"))
	if err != nil {
		return Config{}, err
	}
	return Config{Keymap: km, Styles: tui.DefaultStyles()}, nil
}
