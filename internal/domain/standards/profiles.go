package standards

import "github.com/voltcheck/voltcheck/internal/domain"

// ConfigForProfile builds the full threshold configuration for a
// standard profile. It is a pure function of the profile: no I/O, no
// clocks, and the same profile always yields a value-equal config.
func ConfigForProfile(profile domain.StandardProfile) ValidationConfig {
	switch profile {
	case domain.ProfileMicrosoft:
		return microsoftConfig()
	default:
		return netaConfig()
	}
}

func netaConfig() ValidationConfig {
	return ValidationConfig{
		Profile: domain.ProfileNETA,
		Grounding: GroundingThresholds{
			General: ThresholdReference{
				Value:       25.0,
				Standard:    "ANSI/NETA ATS-2021",
				Section:     "7.13",
				Description: "maximum ground-electrode resistance, general equipment",
			},
			ByEquipment: map[string]float64{
				"substation":  1.0,
				"panel":       5.0,
				"transformer": 10.0,
				"motor":       10.0,
				"generator":   5.0,
			},
		},
		Megger: MeggerThresholds{
			MinPI: ThresholdReference{
				Value:       2.0,
				Standard:    "IEEE 43-2013",
				Section:     "12.2.1",
				Description: "minimum polarization index for class B insulation",
			},
			PICriticalFloor: 1.5,
			MinIR: ThresholdReference{
				Value: 1.0,
				ByVoltage: map[int]float64{
					500:   25.0,
					1000:  100.0,
					2500:  500.0,
					5000:  1000.0,
					10000: 5000.0,
				},
				Standard:    "IEEE 43-2013",
				Section:     "Table 3",
				Description: "minimum 1-minute insulation resistance in megohms by test voltage",
			},
		},
		Thermography: ThermographyThresholds{
			NormalMax:    3.0,
			AttentionMax: 10.0,
			SeriousMax:   25.0,
			CriticalMax:  50.0,
			Reference: ThresholdReference{
				Standard:    "ANSI/NETA ATS-2021",
				Section:     "Table 100.18",
				Description: "thermographic survey delta-T classification",
			},
		},
		Calibration: CalibrationConfig{
			WarnWindowDays: 30,
			Reference: ThresholdReference{
				Standard:    "ANSI/NETA ATS-2021",
				Section:     "5.3",
				Description: "test instrument calibration currency",
			},
		},
		FAT: FATConfig{
			RequiredRoles: []string{"manufacturer", "client"},
			Reference: ThresholdReference{
				Standard:    "IEC 61439-1",
				Section:     "10.2",
				Description: "routine verification and acceptance sign-off",
			},
		},
		Complementary: ComplementaryConfig{
			OCRConfidenceThreshold: 0.7,
			Reference: ThresholdReference{
				Standard:    "ANSI/NETA ATS-2021",
				Section:     "5.3.2",
				Description: "instrument identity and certificate cross-verification",
			},
		},
	}
}

// microsoftConfig follows the Microsoft CxPOR datacenter commissioning
// requirements, which tighten most NETA ceilings.
func microsoftConfig() ValidationConfig {
	return ValidationConfig{
		Profile: domain.ProfileMicrosoft,
		Grounding: GroundingThresholds{
			General: ThresholdReference{
				Value:       10.0,
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 E-04",
				Description: "maximum ground-electrode resistance, general equipment",
			},
			ByEquipment: map[string]float64{
				"substation":  0.5,
				"panel":       3.0,
				"transformer": 5.0,
				"motor":       5.0,
				"generator":   3.0,
			},
		},
		Megger: MeggerThresholds{
			MinPI: ThresholdReference{
				Value:       2.0,
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 E-07",
				Description: "minimum polarization index",
			},
			PICriticalFloor: 1.5,
			MinIR: ThresholdReference{
				Value: 5.0,
				ByVoltage: map[int]float64{
					500:   50.0,
					1000:  200.0,
					2500:  1000.0,
					5000:  2000.0,
					10000: 10000.0,
				},
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 E-07",
				Description: "minimum 1-minute insulation resistance in megohms by test voltage",
			},
		},
		Thermography: ThermographyThresholds{
			NormalMax:    2.0,
			AttentionMax: 8.0,
			SeriousMax:   20.0,
			CriticalMax:  40.0,
			Reference: ThresholdReference{
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 E-11",
				Description: "thermographic survey delta-T classification",
			},
		},
		Calibration: CalibrationConfig{
			WarnWindowDays: 60,
			Reference: ThresholdReference{
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 QA-02",
				Description: "test instrument calibration currency",
			},
		},
		FAT: FATConfig{
			RequiredRoles: []string{"manufacturer", "client", "commissioning_agent"},
			Reference: ThresholdReference{
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 L2",
				Description: "factory witness test acceptance sign-off",
			},
		},
		Complementary: ComplementaryConfig{
			OCRConfidenceThreshold: 0.8,
			Reference: ThresholdReference{
				Standard:    "Microsoft CxPOR",
				Section:     "rev. 5.1 QA-03",
				Description: "instrument identity and certificate cross-verification",
			},
		},
	}
}
