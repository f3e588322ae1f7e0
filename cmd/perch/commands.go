// commands.go contains the cobra command definitions and their flag wiring.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/perchbot/perch/internal/config"
	"github.com/perchbot/perch/internal/observability"
	"github.com/perchbot/perch/internal/plugins"
	"github.com/perchbot/perch/internal/profile"
)

func buildValidateCmd() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
		watch      bool
		skipPlugin bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and plugin references",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.NewLogger(observability.LogConfig{
				Level:  "info",
				Format: "text",
				Output: cmd.ErrOrStderr(),
			})
			if watch {
				return runValidateWatch(cmd, logger, configPath, jsonOutput, skipPlugin)
			}
			ok, err := runValidate(cmd, configPath, jsonOutput, skipPlugin)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("config validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", profile.DefaultConfigPath(),
		"Path to configuration file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit issues as JSON")
	cmd.Flags().BoolVar(&watch, "watch", false, "Revalidate whenever the config file changes")
	cmd.Flags().BoolVar(&skipPlugin, "no-plugins", false, "Skip plugin reference checks")

	return cmd
}

func buildSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the config JSON Schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.JSONSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// runValidate loads and validates the config once. The returned bool reports
// whether the config passed; issues are printed, not returned as errors.
func runValidate(cmd *cobra.Command, configPath string, jsonOutput, skipPlugin bool) (bool, error) {
	raw, err := config.LoadRaw(configPath)
	if err != nil {
		return false, fmt.Errorf("load config: %w", err)
	}

	var result config.Result
	if skipPlugin {
		result = config.ValidateObject(raw)
	} else {
		result = plugins.ValidateConfigWithPlugins(cmd.Context(), raw)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		payload := map[string]any{"valid": result.Valid}
		if !result.Valid {
			issues := make([]map[string]string, 0, len(result.Issues))
			for _, issue := range result.Issues {
				issues = append(issues, map[string]string{
					"path":    issue.Path,
					"message": issue.Message,
				})
			}
			payload["issues"] = issues
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return false, err
		}
		return result.Valid, nil
	}

	if result.Valid {
		fmt.Fprintf(out, "%s: config is valid\n", configPath)
		return true, nil
	}
	for _, issue := range result.Issues {
		fmt.Fprintln(out, issue.String())
	}
	return false, nil
}

// runValidateWatch revalidates whenever the config file changes. Editors
// replace files on save, so the parent directory is watched and events are
// filtered to the config path.
func runValidateWatch(cmd *cobra.Command, logger *observability.Logger, configPath string, jsonOutput, skipPlugin bool) error {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	validate := func() {
		ok, err := runValidate(cmd, configPath, jsonOutput, skipPlugin)
		switch {
		case err != nil:
			logger.Error("validation error", "path", configPath, "error", err)
		case ok:
			logger.Info("config valid", "path", configPath)
		default:
			logger.Warn("config invalid", "path", configPath)
		}
	}

	validate()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			validate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
