package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
	"github.com/vango-dev/reactkit/pkg/reactive"
	"github.com/vango-dev/reactkit/pkg/snapshot"
)

// script is a list of mutations applied in order.
type script struct {
	Steps []step `yaml:"steps"`
}

// step is one mutation. Value is ignored for deletes.
type step struct {
	Op    string `yaml:"op"`
	Path  string `yaml:"path"`
	Value any    `yaml:"value"`
}

func replayCmd(a *app) *cobra.Command {
	var (
		statePath  string
		scriptPath string
		watches    []string
		saveAs     string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply a mutation script to a state file",
		Long: `Load a JSON or YAML state file, watch the given paths and apply
the steps of a YAML script, printing every notification.

Without --watch the whole tree is watched, so every step prints the
root value.

Script format:
  steps:
    - op: set
      path: user.name
      value: grace
    - op: delete
      path: user.age

Examples:
  reactkit replay --state state.json --script ops.yaml
  reactkit replay --state state.yaml --script ops.yaml --watch user.name --watch count
  reactkit replay --state state.json --script ops.yaml --save final`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReplay(cmd, statePath, scriptPath, watches, saveAs)
		},
	}

	cmd.Flags().StringVarP(&statePath, "state", "s", "", "State file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "YAML script of set and delete steps")
	cmd.Flags().StringArrayVarP(&watches, "watch", "w", nil, "Dotted path to watch (repeatable)")
	cmd.Flags().StringVar(&saveAs, "save", "", "Store the final tree as a snapshot with this name")
	cmd.MarkFlagRequired("state")
	cmd.MarkFlagRequired("script")

	return cmd
}

func (a *app) runReplay(cmd *cobra.Command, statePath, scriptPath string, watches []string, saveAs string) error {
	root, err := a.loadState(statePath)
	if err != nil {
		return err
	}
	sc, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	if len(watches) == 0 {
		watches = []string{""}
	}
	for _, path := range watches {
		label := path
		if label == "" {
			label = "(root)"
		}
		h, err := reactive.WatchPath(root, path, func(n, o any) {
			fmt.Fprintf(a.out, "%s: %s (was %s)\n", label, render(n), render(o))
		})
		if err != nil {
			return err
		}
		defer h.Stop()
	}

	for i, s := range sc.Steps {
		a.logger.Debug("replay step", "index", i, "op", s.Op, "path", s.Path)
		if err := applyStep(root, s); err != nil {
			return rkerrors.New("X001").
				WithDetail(fmt.Sprintf("Step %d (%s %s) failed", i+1, s.Op, s.Path)).
				Wrap(err)
		}
	}
	a.success("Applied %d steps", len(sc.Steps))

	if saveAs == "" {
		return nil
	}
	store, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	codec, err := a.codec()
	if err != nil {
		return err
	}
	if err := snapshot.Save(cmd.Context(), root, store, saveAs, codec); err != nil {
		return err
	}
	a.success("Saved snapshot %s", saveAs)
	return nil
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rkerrors.New("X001").WithDetail("Could not read " + path).Wrap(err)
	}
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, rkerrors.New("X001").WithDetail("Could not parse " + path).Wrap(err)
	}
	for i := range sc.Steps {
		s := &sc.Steps[i]
		s.Op = strings.ToLower(s.Op)
		if s.Op != "set" && s.Op != "delete" {
			return nil, rkerrors.New("X001").
				WithDetail(fmt.Sprintf("Step %d has unknown op %q", i+1, s.Op))
		}
		s.Value = snapshot.Normalize(s.Value)
	}
	return &sc, nil
}

func applyStep(root *reactive.Root, s step) error {
	if s.Op == "delete" {
		return reactive.DeletePath(root, s.Path)
	}
	return reactive.SetPath(root, s.Path, s.Value)
}

// render formats a value as compact JSON.
func render(v any) string {
	data, err := json.Marshal(reactive.Plain(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
