package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/internal/config"
	"github.com/katalvlaran/lodgenet/internal/httpapi"
)

// newRootCmd wires every subcommand. Flags default to the values resolved
// from the environment in cfg, so a flag always wins over the environment.
func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:   "lodgenet",
		Short: "Query the lodge trail network as of a given year",
		Long: `lodgenet builds the undirected network of lodges joined by trails
established on or before --year, then answers structural queries.

Examples:
  lodgenet nodes --year 2005
  lodgenet degree 2 --year 2005
  lodgenet components --catalog postgres
  lodgenet reachable 1 --year 2010 --json
  lodgenet serve --addr :8080`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.IntVar(&a.year, "year", time.Now().Year(), "include connections established on or before this year")
	pf.StringVar(&a.cfg.Catalog, "catalog", cfg.Catalog, "catalog backend: file|postgres")
	pf.StringVar(&a.cfg.CatalogFile, "file", cfg.CatalogFile, "YAML catalog path for --catalog file")
	pf.BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(
		newNodesCmd(a),
		newDegreeCmd(a),
		newComponentsCmd(a),
		newReachableCmd(a),
		newServeCmd(a),
		newSeedCmd(a),
		newGenerateCmd(a),
	)

	return root
}

func newNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the lodges present in the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()
			eng, err := a.engine(cmd.Context(), nil, true)
			if err != nil {
				return err
			}
			nodes, err := eng.ListNodes()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, httpapi.NodesResponse{Year: a.year, BuildID: eng.Snapshot().BuildID, Nodes: nodes})
			}
			for _, l := range nodes {
				fmt.Fprintf(out, "%d\t%s\n", l.ID, l)
			}
			fmt.Fprintf(out, "%d lodges in the %d network\n", len(nodes), a.year)

			return nil
		},
	}
}

func newDegreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "degree LODGE_ID",
		Short: "Count the distinct lodges directly connected to a lodge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			eng, err := a.engine(cmd.Context(), nil, true)
			if err != nil {
				return err
			}
			l, err := lookupArg(eng.Directory().Lookup, args[0])
			if err != nil {
				return err
			}
			d := eng.Degree(l)
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), httpapi.DegreeResponse{Year: a.year, Lodge: l, Degree: d})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: degree %d\n", l, d)

			return nil
		},
	}
}

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Count the connected clusters of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()
			eng, err := a.engine(cmd.Context(), nil, true)
			if err != nil {
				return err
			}
			comps, err := eng.Components(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, httpapi.ComponentsResponse{Year: a.year, Count: len(comps), Components: comps})
			}
			fmt.Fprintf(out, "%d components\n", len(comps))
			for i, c := range comps {
				fmt.Fprintf(out, "#%d\t%v\n", i+1, c)
			}

			return nil
		},
	}
}

func newReachableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reachable LODGE_ID",
		Short: "List the lodges reachable from a lodge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			eng, err := a.engine(cmd.Context(), nil, true)
			if err != nil {
				return err
			}
			l, err := lookupArg(eng.Directory().Lookup, args[0])
			if err != nil {
				return err
			}
			reach, err := eng.Reachable(cmd.Context(), l)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, httpapi.ReachableResponse{Year: a.year, Lodge: l, Reachable: reach})
			}
			for _, r := range reach {
				fmt.Fprintf(out, "%d\t%s\n", r.ID, r)
			}
			fmt.Fprintf(out, "%d lodges reachable from %s\n", len(reach), l.Name)

			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			eng, err := a.engine(ctx, reg, false)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(httpapi.NewHandlers(eng, a.log), reg, a.log),
				ReadHeaderTimeout: 5 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				a.log.Info("http_listen", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err = <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			a.log.Info("http_shutdown")

			return srv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", a.cfg.HTTPAddr, "listen address")

	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the Postgres tables and load the YAML catalog from --file into them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()
			src, err := catalog.LoadFile(a.cfg.CatalogFile)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pg, err := a.openPostgres(ctx)
			if err != nil {
				return err
			}
			if err = pg.EnsureSchema(ctx); err != nil {
				return err
			}
			if err = pg.Insert(ctx, src.Lodges(), src.Links()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d lodges and %d connections\n", len(src.Lodges()), len(src.Links()))

			return nil
		},
	}
}

// lookupArg parses a lodge id argument and resolves it in the directory.
func lookupArg(lookup func(int) (catalog.Lodge, bool), arg string) (catalog.Lodge, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return catalog.Lodge{}, fmt.Errorf("lodge id %q is not an integer", arg)
	}
	l, ok := lookup(id)
	if !ok {
		return catalog.Lodge{}, fmt.Errorf("lodge %d not found", id)
	}

	return l, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
