package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/resonancex/internal/orbits"
	"github.com/san-kum/resonancex/internal/physics"
)

var palette = []string{
	"#00d7ff", "#ffaf00", "#5fff87", "#ff5f87", "#af87ff", "#ffff5f", "#87afaf", "#ff8700",
}

// TrajectorySVG draws one polyline per planet around the star.
func TrajectorySVG(traj *orbits.Trajectory, width, height int) string {
	if traj == nil {
		return ""
	}
	tracks := make([][]physics.Vec2, traj.NumPlanets())
	for i := range tracks {
		tracks[i] = traj.Track(i)
	}
	return TracksSVG(tracks, traj.Names, width, height)
}

// TracksSVG draws star-centred tracks on a square scale so orbits stay
// round. The star sits at the centre of the image.
func TracksSVG(tracks [][]physics.Vec2, labels []string, width, height int) string {
	reach := 0.0
	for _, track := range tracks {
		for _, p := range track {
			if r := p.Norm(); r > reach && !math.IsInf(r, 0) {
				reach = r
			}
		}
	}
	if reach == 0 {
		return ""
	}
	reach *= 1.1

	cx, cy := float64(width)/2, float64(height)/2
	scale := math.Min(cx, cy) / reach

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<circle cx="%.1f" cy="%.1f" r="4" fill="#ffd75f"/>
`, width, height, width, height, cx, cy))

	for i, track := range tracks {
		if len(track) < 2 {
			continue
		}
		color := palette[i%len(palette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for k, p := range track {
			x := cx + p.X*scale
			y := cy - p.Y*scale
			if k == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		if i < len(labels) {
			last := track[len(track)-1]
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s</text>
`, cx+last.X*scale+6, cy-last.Y*scale-6, color, html.EscapeString(labels[i])))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
