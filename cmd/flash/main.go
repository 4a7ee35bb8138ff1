package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flash/cmd/flash/tui"
	"flash/internal/deck"
	"flash/internal/review"
)

var (
	// Flags
	deckArg   string
	priority  int
	frequency int
	xeric     bool
	listDecks bool
	verbose   bool

	// Logger. The review screen owns the terminal, so verbose logs go to a
	// file under the deck directory instead of stderr.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "flash",
	Short: "Flash cards for the terminal",
	Long: `flash is a spaced-repetition flashcard tool for the terminal.

Decks are YAML files of question/answer cards kept in $XDG_DATA_HOME/flash
(or ~/.local/share/flash). Each card carries a priority from 0 (known) to 3
(difficult); a session shows high-priority tiers first, re-surfaces difficult
cards periodically, and writes the ratings you enter back to the deck file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runFlash,
}

func init() {
	rootCmd.Flags().StringVarP(&deckArg, "deck", "d", "", "Deck name or path to a deck file")
	rootCmd.Flags().IntVarP(&priority, "priority", "p", int(review.FilterAll), "Only show cards of the given priority (1-4)")
	rootCmd.Flags().IntVarP(&frequency, "frequency", "f", 5, "How often to shuffle high priority cards back in (0 disables)")
	rootCmd.Flags().BoolVarP(&xeric, "xeric", "x", false, "Hide cards with priority 0 for this run")
	rootCmd.Flags().BoolVarP(&listDecks, "list", "l", false, "List the available decks")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to the deck directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger builds the zap logger. Without --verbose it stays a no-op.
func setupLogger(cmd *cobra.Command, args []string) error {
	if !verbose {
		return nil
	}

	lib, err := deck.OpenLibrary()
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(lib.Dir(), "flash.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	return nil
}

// runFlash drives one run end to end: resolve the deck, partition and plan,
// hand the session to the TUI, then reconcile and save exactly once.
func runFlash(cmd *cobra.Command, args []string) error {
	lib, err := deck.OpenLibrary()
	if err != nil {
		return err
	}

	names, err := lib.Decks()
	if err != nil {
		return err
	}

	if listDecks {
		fmt.Println("Available Flash decks:")
		for i, name := range names {
			fmt.Printf("  %d. %s\n", i+1, name)
		}
		return nil
	}

	if deckArg == "" {
		return errors.New("no deck selected; use --list to see available decks")
	}

	path, name, err := lib.Resolve(deckArg)
	if err != nil {
		return err
	}

	d, err := deck.Load(path, name)
	if err != nil {
		return err
	}
	logger.Info("deck loaded",
		zap.String("deck", d.Name),
		zap.Int("cards", d.Size))

	groups := review.Partition(d.Cards)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	plan, err := review.BuildPlan(groups, review.Filter(priority), xeric, rng)
	if err != nil {
		return err
	}

	session := review.NewSession(plan, frequency, rng)
	program := tea.NewProgram(
		tui.New(session, d.Name, d.Size),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("review session: %w", err)
	}

	// The deck is written exactly once, whether the session ran to
	// exhaustion or was quit early. Excluded tiers are reattached here.
	cards := review.Reconcile(plan)
	if err := d.Save(cards); err != nil {
		return err
	}
	logger.Info("deck saved",
		zap.String("deck", d.Name),
		zap.Int("cards", len(cards)))
	return nil
}
