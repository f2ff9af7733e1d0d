package vis

import (
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/vis/draw"
)

// DefaultRegions returns coarse outlines of the four main Japanese islands in
// normalised map coordinates.
func DefaultRegions() []draw.Region {
	return []draw.Region{
		{Name: "Hokkaido", Outline: []vec.Vec2{
			{X: 0.733, Y: 0.038}, {X: 0.778, Y: 0.031}, {X: 0.85, Y: 0.106}, {X: 0.961, Y: 0.106},
			{X: 0.978, Y: 0.169}, {X: 0.883, Y: 0.194}, {X: 0.844, Y: 0.256}, {X: 0.733, Y: 0.212},
			{X: 0.667, Y: 0.288}, {X: 0.661, Y: 0.212}, {X: 0.744, Y: 0.163},
		}},
		{Name: "Honshu", Outline: []vec.Vec2{
			{X: 0.667, Y: 0.294}, {X: 0.75, Y: 0.288}, {X: 0.772, Y: 0.4}, {X: 0.722, Y: 0.481},
			{X: 0.717, Y: 0.569}, {X: 0.717, Y: 0.644}, {X: 0.656, Y: 0.694}, {X: 0.6, Y: 0.712},
			{X: 0.5, Y: 0.712}, {X: 0.489, Y: 0.731}, {X: 0.433, Y: 0.781}, {X: 0.394, Y: 0.731},
			{X: 0.278, Y: 0.725}, {X: 0.167, Y: 0.756}, {X: 0.161, Y: 0.725}, {X: 0.256, Y: 0.656},
			{X: 0.433, Y: 0.65}, {X: 0.489, Y: 0.544}, {X: 0.583, Y: 0.513}, {X: 0.661, Y: 0.381},
		}},
		{Name: "Shikoku", Outline: []vec.Vec2{
			{X: 0.25, Y: 0.8}, {X: 0.278, Y: 0.744}, {X: 0.367, Y: 0.737}, {X: 0.372, Y: 0.763},
			{X: 0.306, Y: 0.788}, {X: 0.272, Y: 0.831},
		}},
		{Name: "Kyushu", Outline: []vec.Vec2{
			{X: 0.094, Y: 0.8}, {X: 0.111, Y: 0.756}, {X: 0.167, Y: 0.756}, {X: 0.206, Y: 0.8},
			{X: 0.189, Y: 0.913}, {X: 0.15, Y: 0.938}, {X: 0.122, Y: 0.919}, {X: 0.128, Y: 0.844},
			{X: 0.1, Y: 0.825},
		}},
	}
}

// DefaultSites returns the labelled cities shown on the map.
func DefaultSites() []draw.Site {
	return []draw.Site{
		{Name: "Sapporo", Pos: vec.Vec2{X: 0.742, Y: 0.184}, Major: true},
		{Name: "Aomori", Pos: vec.Vec2{X: 0.708, Y: 0.324}},
		{Name: "Sendai", Pos: vec.Vec2{X: 0.715, Y: 0.483}},
		{Name: "Niigata", Pos: vec.Vec2{X: 0.613, Y: 0.505}},
		{Name: "Tokyo", Pos: vec.Vec2{X: 0.649, Y: 0.644}, Major: true},
		{Name: "Kanazawa", Pos: vec.Vec2{X: 0.481, Y: 0.59}},
		{Name: "Nagoya", Pos: vec.Vec2{X: 0.495, Y: 0.676}},
		{Name: "Osaka", Pos: vec.Vec2{X: 0.417, Y: 0.707}, Major: true},
		{Name: "Hiroshima", Pos: vec.Vec2{X: 0.248, Y: 0.726}},
		{Name: "Matsuyama", Pos: vec.Vec2{X: 0.265, Y: 0.76}},
		{Name: "Fukuoka", Pos: vec.Vec2{X: 0.133, Y: 0.776}, Major: true},
		{Name: "Kagoshima", Pos: vec.Vec2{X: 0.142, Y: 0.9}},
	}
}
