package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

func newProfilesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List standard profiles and their key thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				all := map[string]standards.ValidationConfig{}
				for _, p := range domain.ValidProfiles {
					all[p.String()] = standards.ConfigForProfile(p)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}

			out := cmd.OutOrStdout()
			for _, p := range domain.ValidProfiles {
				cfg := standards.ConfigForProfile(p)
				fmt.Fprintf(out, "%s\n", p)
				fmt.Fprintf(out, "  grounding          %g Ω general ceiling (%s %s)\n",
					cfg.Grounding.General.Value, cfg.Grounding.General.Standard, cfg.Grounding.General.Section)
				fmt.Fprintf(out, "  polarization index ≥ %g, serviceability floor %g (%s %s)\n",
					cfg.Megger.MinPI.Value, cfg.Megger.PICriticalFloor, cfg.Megger.MinPI.Standard, cfg.Megger.MinPI.Section)
				fmt.Fprintf(out, "  thermography       ΔT cutoffs %g/%g/%g/%g °C (%s %s)\n",
					cfg.Thermography.NormalMax, cfg.Thermography.AttentionMax, cfg.Thermography.SeriousMax, cfg.Thermography.CriticalMax,
					cfg.Thermography.Reference.Standard, cfg.Thermography.Reference.Section)
				fmt.Fprintf(out, "  calibration        warn within %d days of expiry\n", cfg.Calibration.WarnWindowDays)
				fmt.Fprintf(out, "  fat sign-offs      %v\n", cfg.FAT.RequiredRoles)
				fmt.Fprintf(out, "  ocr confidence     ≥ %g\n\n", cfg.Complementary.OCRConfidenceThreshold)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output full profile configurations as JSON")

	return cmd
}
