package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/service"
	"todo-list/internal/store"
	"todo-list/internal/store/memory"
)

const shellHelp = `commands:
  add <priority> <title>    add a task, prints the new count
  rm <title>                remove every task with this title
  ls [priority]             list tasks, optionally only one priority
  get <title>               show the first task with this title
  prio <priority> <title>   change a task's priority
  priorities                show the priority levels
  help                      show this help
  quit                      leave the shell
`

var errQuit = errors.New("quit")

func newShellCmd(v *viper.Viper, cfg *config.Config) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Manage a task list interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(cfg.Logging, cmd.ErrOrStderr())
			if !verbose {
				log = log.Level(zerolog.WarnLevel)
			}

			svc, err := service.New(memory.New(), service.WithLogger(log))
			if err != nil {
				return err
			}

			sh := NewShell(svc, cmd.OutOrStdout(), cfg.Shell.Output)
			return sh.Run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringP("output", "o", "", "list format: table, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every task change")
	_ = v.BindPFlag("shell.output", cmd.Flags().Lookup("output"))

	return cmd
}

// Shell runs line commands against a task service.
type Shell struct {
	svc    *service.TaskService
	out    io.Writer
	format string
}

func NewShell(svc *service.TaskService, out io.Writer, format string) *Shell {
	return &Shell{svc: svc, out: out, format: format}
}

// Run reads commands until quit or EOF. Command errors are printed and do
// not stop the loop.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Exec runs one command line.
func (s *Shell) Exec(line string) error {
	name, rest := splitWord(strings.TrimRight(line, "\r\n"))

	switch name {
	case "":
		return nil
	case "add":
		priority, title := splitWord(rest)
		if title == "" {
			return fmt.Errorf("%w: usage: add <priority> <title>", service.ErrInvalidInput)
		}
		_, count, err := s.svc.AddTask(title, priority, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%d\n", count)
	case "rm":
		removed, err := s.svc.RemoveTask(rest)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%t\n", removed)
	case "ls":
		entries, err := s.svc.ListTasks(rest)
		if err != nil {
			return err
		}
		return s.writeEntries(entries)
	case "get":
		task, err := s.svc.GetTask(rest)
		if err != nil {
			return err
		}
		return s.writeEntries([]store.Entry{{Added: task.Added, Title: task.Title, Priority: task.Priority}})
	case "prio":
		priority, title := splitWord(rest)
		if title == "" {
			return fmt.Errorf("%w: usage: prio <priority> <title>", service.ErrInvalidInput)
		}
		task, err := s.svc.SetPriority(title, priority)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s %d\n", task.Title, task.Priority)
	case "priorities":
		for _, p := range s.svc.Priorities() {
			fmt.Fprintf(s.out, "%s=%d\n", p, int(p))
		}
	case "help":
		fmt.Fprint(s.out, shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("%w: unknown command %q", service.ErrInvalidInput, name)
	}

	return nil
}

func (s *Shell) writeEntries(entries []store.Entry) error {
	switch s.format {
	case "json":
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(s.out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ADDED\tTITLE\tPRIORITY")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", e.Added, e.Title, int(e.Priority))
		}
		return tw.Flush()
	}
}

// splitWord returns the first space separated word of s and the remainder
// with leading spaces removed.
func splitWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	word, rest, _ := strings.Cut(s, " ")
	return strings.TrimSpace(word), strings.TrimLeft(rest, " \t")
}
