package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch <document>",
	Short: "Re-validate a schema document whenever it changes",
	Long: `watch monitors a schema document and re-runs the structure check,
migration, and cycle lint every time the file is written. Useful while
hand-editing stored documents or debugging an editor integration.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 300, "debounce duration in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	log := logger()
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace files on save, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	check := func() {
		data, err := readDocument(path)
		if err != nil {
			log.Error().Err(err).Msg("read failed")
			return
		}
		report, err := validateDocument(data)
		if err != nil {
			log.Error().Err(err).Msg("document rejected")
			return
		}
		log.Info().Int("fields", report.Fields).Msg("document is valid")
		for _, id := range report.CycleEntryPoints {
			log.Warn().Str("field", id).Msg("conditional rules form a dependency cycle")
		}
	}

	log.Info().Str("path", path).Msg("watching; press Ctrl+C to stop")
	check()

	debounce := time.Duration(watchDebounce) * time.Millisecond
	var timer *time.Timer
	target := filepath.Clean(path)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, check)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}
