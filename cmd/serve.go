package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/anika/decodequest/internal/api"
	"github.com/anika/decodequest/internal/store"
	"github.com/anika/decodequest/internal/ui/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine as a local JSON API for a web front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, _, err := loadPolicy(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		progress, err := loadProgress(cmd, st)
		if err != nil {
			return err
		}

		srv := api.NewServer(api.Config{
			Policy:    pol,
			Progress:  progress,
			Events:    st.EventRepo(),
			Snapshots: st.SnapshotRepo(),
		})

		addr, _ := cmd.Flags().GetString("addr")
		fmt.Println(theme.Subtitle.Render("Listening on " + addr))
		return http.ListenAndServe(addr, srv.Router())
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8787", "Listen address")
}
