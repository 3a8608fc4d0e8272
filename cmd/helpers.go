package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openlearnhq/curriculum/internal/cache"
	"github.com/openlearnhq/curriculum/internal/compress"
	"github.com/openlearnhq/curriculum/internal/config"
	"github.com/openlearnhq/curriculum/internal/service"
)

// newService wires the engine against the configured store and cache.
func newService() *service.CurriculumService {
	cfg := config.LoadConfig()

	var thumbnails cache.ThumbnailCache
	if cfg.RedisAddr != "" {
		thumbnails = cache.NewRedisThumbnailCache(cfg.RedisAddr)
	} else {
		thumbnails = cache.NewMemoryThumbnailCache()
	}

	return service.NewCurriculumService(
		config.GetStore(cfg),
		thumbnails,
		compress.New(cfg.Compression),
	)
}

// parseOrdering parses "id:pos,id:pos" into position assignments.
func parseOrdering(raw string) ([]service.PositionAssignment, error) {
	var assignments []service.PositionAssignment
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid ordering entry %q, expected <id>:<position>", pair)
		}
		position, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid position in %q: %w", pair, err)
		}
		assignments = append(assignments, service.PositionAssignment{
			ChildID:  parts[0],
			Position: position,
		})
	}
	return assignments, nil
}

func printField(label, value string) {
	color.Set(color.FgCyan)
	fmt.Print(label)
	color.Unset()
	fmt.Printf(": %s\n", value)
}

// checkMissingFlags checks if the required flags are set and returns ok if they are set
func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if !cmd.Flag(required).Changed {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			provided := strings.Join(providedFlags, " ")
			color.Yellow("provided: %s\n", provided)
		}
		return true
	}

	return false
}
