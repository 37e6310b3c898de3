package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/grid"
	"github.com/san-kum/folio/internal/host"
	"github.com/san-kum/folio/internal/logo"
	"github.com/san-kum/folio/internal/repos"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/storage"
	"github.com/san-kum/folio/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	dataDir    string
	cacheTTL   time.Duration
	configFile string
	preset     string
	logFile    string
	username   string
	theme      string
	rate       int
	// Play
	playFor time.Duration
	// Frame
	tick    int
	svgPath string
	// Projects
	language string
	pageNum  int
	format   string
	// Config init
	force bool

	logOut io.Closer
)

// main runs the full-screen page when no subcommand is given.
func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and closes the --log file whether or not the command failed.
func execute(root *cobra.Command) error {
	defer func() {
		if logOut != nil {
			logOut.Close()
			logOut = nil
		}
	}()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "folio",
		Short:             "terminal portfolio with ascii animations",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runPage,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".folio", "data directory for cached listings")
	rootCmd.PersistentFlags().DurationVar(&cacheTTL, "cache-ttl", 10*time.Minute, "reuse cached listings younger than this (0 always refetches)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "pacing preset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write debug log to file")
	rootCmd.PersistentFlags().StringVar(&username, "user", config.DefaultUsername, "github username")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().IntVar(&rate, "rate", config.DefaultRefreshRate, "refresh rate in Hz")

	playCmd := &cobra.Command{
		Use:       "play [animation|logo]",
		Short:     "stream an animation to stdout",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"animation", "logo"},
		RunE:      runPlay,
	}
	playCmd.Flags().DurationVar(&playFor, "duration", 0, "stop after this long (0 runs until interrupted)")

	frameCmd := &cobra.Command{
		Use:       "frame [typing|rain|morph|logo-reveal|logo]",
		Short:     "print a single frame",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"typing", "rain", "morph", "logo-reveal", "logo"},
		RunE:      printFrame,
	}
	frameCmd.Flags().IntVar(&tick, "tick", 0, "tick to render (reveal steps for logo-reveal)")
	frameCmd.Flags().StringVar(&svgPath, "svg", "", "also write the frame as svg to this path")

	projectsCmd := &cobra.Command{
		Use:   "projects [username]",
		Short: "list public repositories",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listProjects,
	}
	projectsCmd.Flags().StringVar(&language, "language", repos.All, "filter by language")
	projectsCmd.Flags().IntVar(&pageNum, "page", 1, "page number")
	projectsCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv or json")

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "list cached repository listings",
		RunE:  listCache,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list pacing presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSCENES (ms)\tREVEAL\tROTATE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				intervals := make([]string, len(p.Scenes))
				for i, s := range p.Scenes {
					intervals[i] = fmt.Sprintf("%s %d", s.Name, s.IntervalMs)
				}
				fmt.Fprintf(w, "%s\t%s\t%d cells / %dms\t%dms\n", name, strings.Join(intervals, ", "),
					p.Logo.RevealBatch, p.Logo.RevealIntervalMs, p.Logo.RotateIntervalMs)
			}
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(playCmd, frameCmd, projectsCmd, cacheCmd, presetsCmd, themesCmd, configCmd)
	return rootCmd
}

// setupLogging routes the standard logger to --log, or discards it so nothing
// is printed over the full-screen page.
func setupLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(logFile, "folio")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logOut = f
	return nil
}

// loadConfig layers defaults, the config file, the preset, the environment and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if f, err := config.LoadEnv(); err != nil {
		return nil, err
	} else if f != "" {
		log.Printf("loaded environment from %s", f)
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("user") {
		cfg.Username = username
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("rate") {
		cfg.RefreshRate = rate
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, newFetcher(cfg))
}

// newFetcher wraps the GitHub client in the on-disk listing cache.
func newFetcher(cfg *config.Config) *storage.Cached {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		log.Printf("cache disabled: %v", err)
	}
	client := repos.NewClient(
		repos.WithToken(cfg.Token),
		repos.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
	return st.Cached(client, cacheTTL)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	what := "animation"
	if len(args) > 0 {
		what = args[0]
	}

	var stepper host.Stepper
	switch what {
	case "animation":
		seq, err := scene.NewRegistry().Build(cfg.SceneSpecs()...)
		if err != nil {
			return err
		}
		sched, err := scene.NewScheduler(seq)
		if err != nil {
			return err
		}
		stepper = sched
		defer func() {
			log.Printf("play: stopped in scene %s at tick %d", sched.Active().Name, sched.Cursor().Tick)
		}()
	case "logo":
		engine := logo.NewEngine(nil, cfg.LogoTiming())
		engine.Start()
		stepper = engine
	default:
		return fmt.Errorf("unknown animation: %s (available: animation, logo)", what)
	}

	out := host.NewTerminal(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	if err := out.Open(); err != nil {
		return err
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if playFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, playFor)
		defer cancel()
	}

	loop := host.NewLoop(stepper, host.WithRate(cfg.RefreshRate), host.WithSurface(out))
	if err := loop.Run(ctx); err != nil {
		return err
	}
	log.Printf("play %s: %d frames", what, loop.Frames())
	return nil
}

func printFrame(cmd *cobra.Command, args []string) error {
	if tick < 0 {
		return fmt.Errorf("tick must be non-negative, got %d", tick)
	}

	var frame grid.Frame
	switch name := args[0]; name {
	case "logo-reveal":
		frame = logo.Default().Reveal(tick * logo.DefaultTiming().RevealBatch)
	case "logo":
		frame = logo.Default().Rotated(tick)
	default:
		render, err := scene.NewRegistry().Get(name)
		if err != nil {
			return err
		}
		frame = render(tick)
	}
	fmt.Println(frame.String())

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.FrameToSVG(frame, export.DefaultSVGOptions())), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", svgPath)
	}
	return nil
}

func listProjects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	user := cfg.Username
	if len(args) > 0 {
		user = args[0]
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	list, err := newFetcher(cfg).List(ctx, user)
	if errors.Is(err, repos.ErrRateLimited) {
		return fmt.Errorf("%w (set GITHUB_TOKEN to raise the limit)", err)
	}
	if err != nil {
		return err
	}

	switch format {
	case "table":
	case "csv":
		return storage.WriteCSV(os.Stdout, repos.Filter(list, language))
	case "json":
		return storage.WriteJSON(os.Stdout, repos.Filter(list, language))
	default:
		return fmt.Errorf("unknown format: %s (available: table, csv, json)", format)
	}

	cats := repos.Categories(list)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = fmt.Sprintf("%s (%d)", c.Name, c.Count)
	}
	fmt.Printf("%s: %s\n\n", user, strings.Join(names, "  "))

	page := repos.Paginate(repos.Filter(list, language), pageNum, cfg.PerPage)
	if page.Total == 0 {
		fmt.Println("no projects found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLANGUAGE\tSTARS\tUPDATED\tTOPICS")
	for _, r := range page.Items {
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.Name, lang, r.Stars,
			r.UpdatedAt.Format("2006-01-02"), strings.Join(r.TopTopics(3), ", "))
	}
	w.Flush()

	fmt.Printf("\nshowing %d-%d of %d (page %d/%d)\n", page.Start+1, page.End, page.Total, page.Number, page.TotalPages)
	if chart := viz.StarsChart(page.Items, 50); chart != "" {
		fmt.Println()
		fmt.Println(chart)
	}
	return nil
}

func listCache(cmd *cobra.Command, args []string) error {
	snaps, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no cached listings")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tREPOS\tFETCHED\tAGE")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Username, s.Count,
			s.FetchedAt.Local().Format("2006-01-02 15:04"), time.Since(s.FetchedAt).Round(time.Second))
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "folio.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
