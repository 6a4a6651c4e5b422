// Package output provides functions to print messages with optional color formatting
package output

import (
	"fmt"
	"strings"

	"github.com/skiff-cd/skiff/services"
	"github.com/spf13/cobra"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	Plain   = color.FgWhite
	Success = color.FgGreen
	Warning = color.FgYellow
	Error   = color.FgRed
)

var maybeColorize func(kind color.Attribute, tmpl string, a ...any) string

// InitColors sets up color functions based on environment
func InitColors(isColorDisabled bool) {
	if color.NoColor || isColorDisabled {
		// Fallback to plain formatting if colors are not supported
		maybeColorize = func(kind color.Attribute, tmpl string, a ...any) string {
			return fmt.Sprintf(tmpl, a...)
		}
	} else {
		maybeColorize = func(kind color.Attribute, tmpl string, a ...any) string {
			return color.New(kind).SprintfFunc()(tmpl, a...)
		}
	}
}

// PrintMessage formats a message with color (if enabled) and returns it
func PrintMessage(kind color.Attribute, tmpl string, a ...any) string {
	if maybeColorize == nil || kind == Plain {
		return fmt.Sprintf(tmpl+"\n", a...)
	}
	return fmt.Sprintln(maybeColorize(kind, tmpl, a...))
}

// FprintPlain writes an uncolored message to the command's stdout
func FprintPlain(cmd *cobra.Command, tmpl string, a ...any) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), PrintMessage(Plain, tmpl, a...))
	return err
}

// FprintSuccess writes a success message to the command's stdout
func FprintSuccess(cmd *cobra.Command, tmpl string, a ...any) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), PrintMessage(Success, tmpl, a...))
	return err
}

func PrintTable(header []string, data [][]string) (string, error) {
	buf := strings.Builder{}

	table := tablewriter.NewTable(
		&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines: tw.Lines{
					ShowHeaderLine: tw.Off,
				},
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{PerColumn: []tw.Align{tw.AlignRight, tw.AlignLeft}},
			},
		}))

	if len(header) > 0 {
		table.Header(header)
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("bulk adding data to table: %w", err)
	}

	if err := table.Render(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}

	return buf.String(), nil
}

func PrintTargetDetails(target *services.Target) (string, error) {
	data := [][]string{
		{"ID", target.ID.String()},
		{"Name", target.Name},
		{"Role", target.Role.String()},
		{"Token", tokenIndicator(target)},
		{"Created At", target.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Updated At", target.UpdatedAt.Format("2006-01-02 15:04:05")},
	}

	table, err := PrintTable([]string{}, data)
	if err != nil {
		return "", fmt.Errorf("printing target details table: %w", err)
	}
	return table, nil
}

func PrintTargetList(targets []*services.Target) (string, error) {
	if len(targets) == 0 {
		return PrintMessage(Plain, "No targets registered."), nil
	}

	header := []string{"ID", "Name", "Role", "Token", "Created At"}
	var data [][]string
	for _, target := range targets {
		data = append(data, []string{
			target.ID.String(),
			target.Name,
			target.Role.String(),
			tokenIndicator(target),
			target.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	table, err := PrintTable(header, data)
	if err != nil {
		return "", fmt.Errorf("printing target list table: %w", err)
	}
	return table, nil
}

func PrintPromotionList(promotions []*services.Promotion) (string, error) {
	if len(promotions) == 0 {
		return PrintMessage(Plain, "No promotions recorded."), nil
	}

	header := []string{"ID", "Target", "Build", "Status", "Created At"}
	var data [][]string
	for _, promotion := range promotions {
		data = append(data, []string{
			promotion.ID.String(),
			promotion.TargetName,
			shortBuildID(promotion.BuildID),
			promotion.Status.String(),
			promotion.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	table, err := PrintTable(header, data)
	if err != nil {
		return "", fmt.Errorf("printing promotion list table: %w", err)
	}
	return table, nil
}

func PrintBuildList(builds []*services.Build) (string, error) {
	if len(builds) == 0 {
		return PrintMessage(Plain, "No builds recorded."), nil
	}

	header := []string{"ID", "Commit", "Pages", "Status", "Created At"}
	var data [][]string
	for _, build := range builds {
		data = append(data, []string{
			build.ID.String(),
			shortBuildID(build.CommitHashStr()),
			fmt.Sprintf("%d", build.PageCount),
			build.Status.String(),
			build.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	table, err := PrintTable(header, data)
	if err != nil {
		return "", fmt.Errorf("printing build list table: %w", err)
	}
	return table, nil
}

func tokenIndicator(target *services.Target) string {
	if target.AuthToken != "" {
		return "stored"
	}
	return "ambient"
}

func shortBuildID(buildID string) string {
	if len(buildID) > 8 {
		return buildID[:8]
	}
	return buildID
}

// NoColor is a flag that can be used to disable colored output in the CLI.
var NoColor = &noColorFlag{set: false}

type noColorFlag struct {
	set bool
}

func (f *noColorFlag) Set(value string) error {
	// This is a boolean flag, so we ignore the value and just mark it as set
	f.set = true
	return nil
}

func (f *noColorFlag) String() string {
	if f.set {
		return "true"
	}
	return "false"
}

func (f *noColorFlag) Type() string {
	return "bool"
}

// IsSet returns true if the --no-color flag was explicitly set
func (f *noColorFlag) IsSet() bool {
	return f.set
}

// IsBoolFlag tells pflag this is a boolean flag (no argument required)
func (f *noColorFlag) IsBoolFlag() bool {
	return true
}
