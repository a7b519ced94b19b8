package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/resonancex/internal/orbits"
)

type TrajectoryData struct {
	Planets       []string       `json:"planets"`
	Periods       []float64      `json:"periods"`
	Masses        []float64      `json:"masses"`
	Duration      float64        `json:"duration_days"`
	Steps         int            `json:"steps"`
	Chain         []string       `json:"chain,omitempty"`
	EnergyDrift   float64        `json:"energy_drift"`
	MomentumDrift float64        `json:"momentum_drift"`
	MaxExcursion  float64        `json:"max_excursion"`
	Times         []float64      `json:"times"`
	Positions     [][][2]float64 `json:"positions"`
}

func TrajectoryJSON(w io.Writer, traj *orbits.Trajectory) error {
	data := TrajectoryData{
		Planets:       traj.Names,
		Periods:       traj.Periods,
		Masses:        traj.Masses,
		Duration:      traj.Duration,
		Steps:         len(traj.Times),
		EnergyDrift:   traj.EnergyDrift,
		MomentumDrift: traj.MomentumDrift,
		MaxExcursion:  traj.MaxExcursion,
		Times:         traj.Times,
		Positions:     make([][][2]float64, len(traj.Positions)),
	}

	if traj.Chain != nil {
		for _, l := range traj.Chain.Links {
			if l.Locked {
				data.Chain = append(data.Chain, fmt.Sprintf("%s-%s %d:%d", traj.Names[l.Inner], traj.Names[l.Outer], l.P, l.Q))
			}
		}
	}

	for k, snap := range traj.Positions {
		row := make([][2]float64, len(snap))
		for i, p := range snap {
			row[i] = [2]float64{p.X, p.Y}
		}
		data.Positions[k] = row
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
