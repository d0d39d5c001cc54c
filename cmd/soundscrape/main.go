// cmd/soundscrape/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/soundscrape/soundscrape/internal/config"
	"github.com/soundscrape/soundscrape/internal/export"
	"github.com/soundscrape/soundscrape/internal/relay"
	"github.com/soundscrape/soundscrape/internal/service"
	"github.com/soundscrape/soundscrape/pkg/api"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// Version information (set by build flags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// Exit codes by failure class.
const (
	exitOK      = 0
	exitUsage   = 1
	exitProfile = 2
	exitNetwork = 3
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	switch os.Args[1] {
	case "profile":
		runProfile(os.Args[2:])
	case "export":
		runExport(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "template":
		runTemplate()
	case "version":
		fmt.Printf("soundscrape %s (built %s, commit %s)\n", version, buildTime, gitCommit)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(exitUsage)
	}
}

func printUsage() {
	fmt.Print(`soundscrape - SoundCloud profile viewer and export tool

Usage:
  soundscrape profile <username|profile-url> [flags]   Load and print a profile
  soundscrape export <username|profile-url> [flags]    Generate download helper artifacts
  soundscrape validate <config.yaml>                   Validate a configuration file
  soundscrape template                                 Print a configuration template
  soundscrape version                                  Print version information

Flags:
  -c, --config <file>    Configuration file (YAML)
  -f, --format <format>  Export format: script, urls, json, csv, xlsx (export only)
  -s, --source <source>  Export source: tracks, playlists (default tracks)
  -o, --output <dir>     Output directory for artifacts
  -v, --verbose          Enable debug logging
      --json             Print results as JSON (profile only)
`)
}

// runProfile loads and prints a full profile bundle.
func runProfile(args []string) {
	identifier, flags := splitArgs(args)
	if identifier == "" {
		fmt.Fprintln(os.Stderr, "profile: missing username or profile URL")
		os.Exit(exitUsage)
	}

	client, _ := newClient(flags)
	defer client.Close()

	bundle, err := client.LoadProfile(context.Background(), identifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load profile: %v\n", err)
		os.Exit(exitCodeFor(err))
	}

	if flags.boolFlag("--json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(bundle); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
			os.Exit(exitUsage)
		}
		return
	}

	printBundle(bundle)
}

// runExport loads a profile's collections and writes the chosen artifact.
func runExport(args []string) {
	identifier, flags := splitArgs(args)
	if identifier == "" {
		fmt.Fprintln(os.Stderr, "export: missing username or profile URL")
		os.Exit(exitUsage)
	}

	client, cfg := newClient(flags)
	defer client.Close()

	format := exportFormat(flags, cfg)
	if !format.IsValid() {
		fmt.Fprintf(os.Stderr, "export: unsupported format %q\n", format)
		os.Exit(exitUsage)
	}

	bundle, err := client.LoadProfile(context.Background(), identifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load profile: %v\n", err)
		os.Exit(exitCodeFor(err))
	}

	var items []types.ExportItem
	source := flags.stringFlag("-s", "--source")
	switch source {
	case "", "tracks":
		items = types.ExportItemsFromTracks(bundle.Tracks)
	case "playlists":
		items = types.ExportItemsFromPlaylists(bundle.Playlists)
	default:
		fmt.Fprintf(os.Stderr, "export: unsupported source %q\n", source)
		os.Exit(exitUsage)
	}

	if len(items) == 0 {
		fmt.Printf("Nothing to export for %s (source: %s)\n", bundle.Profile.Username, sourceName(source))
		return
	}

	name := bundle.Profile.Username + "-" + sourceName(source)
	path, err := client.Export(format, name, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(exitUsage)
	}
	fmt.Printf("Exported %d items to %s\n", len(items), path)
}

// runValidate checks a configuration file.
func runValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "validate: missing configuration file")
		os.Exit(exitUsage)
	}

	if _, err := config.LoadFromFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(exitUsage)
	}
	fmt.Printf("Configuration file '%s' is valid\n", args[0])
}

// runTemplate prints a starter configuration.
func runTemplate() {
	data, err := yaml.Marshal(config.GenerateTemplate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal template: %v\n", err)
		os.Exit(exitUsage)
	}
	os.Stdout.Write(data)
}

// exportFormat resolves the artifact format: the -f/--format flag wins,
// otherwise the configured export format applies.
func exportFormat(flags flagSet, cfg *config.Config) export.Format {
	if v := flags.stringFlag("-f", "--format"); v != "" {
		return export.Format(v)
	}
	return export.Format(cfg.Export.Format)
}

// newClient builds an API client from the flag set, applying overrides.
// The resolved configuration is returned alongside the client.
func newClient(flags flagSet) (*api.Client, *config.Config) {
	var cfg *config.Config
	if file := flags.stringFlag("-c", "--config"); file != "" {
		loaded, err := config.LoadFromFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(exitUsage)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if flags.boolFlag("-v") || flags.boolFlag("--verbose") {
		cfg.Debug = true
	}
	if dir := flags.stringFlag("-o", "--output"); dir != "" {
		cfg.Export.OutputDir = dir
	}

	client, err := api.NewClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(exitUsage)
	}

	if cfg.Monitoring.Enabled {
		go func() {
			if err := client.ServeMonitoring(cfg.Monitoring.Addr); err != nil {
				fmt.Fprintf(os.Stderr, "monitoring endpoint stopped: %v\n", err)
			}
		}()
	}

	return client, cfg
}

// exitCodeFor maps a load error onto a CLI exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, relay.ErrRelayUnavailable), errors.Is(err, relay.ErrEmptyRelayPayload):
		return exitNetwork
	case errors.Is(err, service.ErrProfileNotFound), errors.Is(err, service.ErrExtractionEmpty):
		return exitProfile
	default:
		return exitProfile
	}
}

func printBundle(bundle *types.ProfileBundle) {
	p := bundle.Profile
	fmt.Printf("Profile: %s (%s)\n", p.DisplayName, p.Username)
	if p.City != "" || p.Country != "" {
		fmt.Printf("  Location:  %s %s\n", p.City, p.Country)
	}
	fmt.Printf("  Followers: %d  Following: %d\n", p.FollowersCount, p.FollowingCount)
	fmt.Printf("  Tracks: %d  Playlists: %d\n", p.TrackCount, p.PlaylistCount)
	fmt.Printf("  URL: %s\n", p.PermalinkURL)

	fmt.Printf("\nLiked tracks (%d):\n", len(bundle.Tracks))
	for i, track := range bundle.Tracks {
		author := ""
		if track.Author != nil {
			author = " by " + track.Author.DisplayName
		}
		fmt.Printf("  %d. %s%s\n", i+1, track.Title, author)
	}

	fmt.Printf("\nPlaylists (%d):\n", len(bundle.Playlists))
	for i, playlist := range bundle.Playlists {
		fmt.Printf("  %d. %s (%d tracks)\n", i+1, playlist.Title, playlist.TrackCount)
	}
}

func sourceName(source string) string {
	if source == "" {
		return "tracks"
	}
	return source
}

// flagSet is the raw flag arguments of a subcommand.
type flagSet []string

// splitArgs separates the positional identifier from the flags.
func splitArgs(args []string) (string, flagSet) {
	identifier := ""
	var flags flagSet
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			flags = append(flags, arg)
			if i+1 < len(args) && takesValue(arg) {
				i++
				flags = append(flags, args[i])
			}
			continue
		}
		if identifier == "" {
			identifier = arg
		}
	}
	return identifier, flags
}

// takesValue reports whether a flag consumes the following argument.
func takesValue(flag string) bool {
	switch flag {
	case "-c", "--config", "-f", "--format", "-s", "--source", "-o", "--output":
		return true
	}
	return false
}

// stringFlag returns the value following the first matching flag name.
func (f flagSet) stringFlag(names ...string) string {
	for i := 0; i < len(f); i++ {
		for _, name := range names {
			if f[i] == name && i+1 < len(f) {
				return f[i+1]
			}
		}
	}
	return ""
}

// boolFlag reports whether the flag is present.
func (f flagSet) boolFlag(name string) bool {
	for _, arg := range f {
		if arg == name {
			return true
		}
	}
	return false
}
