package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anika/decodequest/internal/profile"
	"github.com/anika/decodequest/internal/session"
	"github.com/anika/decodequest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "decodequest",
	Short: "Adaptive decoding practice for young readers",
	Long:  "DecodeQuest — terminal practice games that help children build reading-decoding mastery, adapted to a learner profile.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DECODEQUEST_DB env var)")
	rootCmd.PersistentFlags().String("profile", "profile.json", "Path to the learner profile (missing file means defaults)")

	rootCmd.AddCommand(missionCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DECODEQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadPolicy loads the learner profile named by --profile and resolves it.
// A missing profile file is not an error; defaults apply.
func loadPolicy(cmd *cobra.Command) (profile.Policy, *profile.LearnerProfile, error) {
	path, _ := cmd.Flags().GetString("profile")
	prof, err := profile.Load(path)
	if err != nil {
		return profile.Policy{}, nil, fmt.Errorf("load profile: %w", err)
	}
	return profile.ResolvePolicy(prof), prof, nil
}

// loadProgress restores the latest progress snapshot, or starts fresh.
func loadProgress(cmd *cobra.Command, st *store.Store) (*session.ProgressData, error) {
	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if snap == nil {
		return session.NewProgressData(time.Now()), nil
	}
	progress := snap.Data.Progress
	return &progress, nil
}

// saveProgress snapshots the current progress at the current event sequence.
func saveProgress(cmd *cobra.Command, st *store.Store, progress *session.ProgressData) error {
	seq, err := st.NextSequence(cmd.Context())
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	err = st.SnapshotRepo().Save(cmd.Context(), &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: session.SchemaVersion, Progress: *progress},
	})
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return st.SnapshotRepo().Prune(cmd.Context(), keepSnapshots)
}

// keepSnapshots bounds the snapshot table; each save prunes older rows.
const keepSnapshots = 10
