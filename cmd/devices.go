package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
	"github.com/prettymuchbryce/mobiletest/internal/fs"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	profileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

var devicesProfilePath string

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the breakpoints and categories a run would evaluate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		probe, name, err := loadProbe(fs.NewReal(), devicesProfilePath)
		if err != nil {
			return err
		}
		printDevices(cmd.OutOrStdout(), name, probe, checks.List())
		return nil
	},
}

// printDevices renders the profile's breakpoints and the registered
// categories as a tree.
func printDevices(w io.Writer, name string, probe device.Probe, defs []checks.Definition) {
	tree := treeprint.NewWithRoot(profileStyle.Render("profile: " + name))

	bps := tree.AddBranch("breakpoints:")
	for _, bp := range probe.Breakpoints() {
		bps.AddNode(fmt.Sprintf("%-18s %s", bp.Name, dimStyle.Render(fmt.Sprintf("%dx%d", bp.Width, bp.Height))))
	}

	cats := tree.AddBranch("categories:")
	for _, d := range defs {
		names := make([]string, 0, len(d.Rules))
		for _, r := range d.Rules {
			names = append(names, r.Name)
		}
		branch := cats.AddBranch(fmt.Sprintf("%s %s", d.Name, dimStyle.Render(fmt.Sprintf("(%d rules)", len(d.Rules)))))
		branch.AddNode(dimStyle.Render(strings.Join(names, ", ")))
	}

	fmt.Fprint(w, tree.String())
}

func init() {
	devicesCmd.Flags().StringVar(&devicesProfilePath, "profile", "", "path to an alternate device profile")
	rootCmd.AddCommand(devicesCmd)
}
