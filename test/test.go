package main

import (
	"flag"
	"log"

	"github.com/fukurin00/waypoint_path_generator/gridmap"
)

func main() {
	mapFile := flag.String("map", "../map/ict_3rd_floor.png", "map image")
	yamlFile := flag.String("yaml", "", "map yaml (default: map path with .yaml)")
	flag.Parse()

	yml := *yamlFile
	if yml == "" {
		yml = gridmap.YamlPathFor(*mapFile)
	}
	m, err := gridmap.LoadMap(yml, *mapFile)
	if err != nil {
		log.Fatal(err)
	}
	g := m.Grid
	log.Print(m.Meta.Resolution, m.Meta.Origin, g.Height, g.Width, g.Len())
	log.Printf("obstacles: %d (%.1f%%)", g.ObstacleCount(), 100*float64(g.ObstacleCount())/float64(g.Len()))

	corner := gridmap.FlipPoints([]gridmap.Point{{X: float64(g.Width), Y: 0}}, g.Height)[0]
	log.Printf("world extent: %v - %v", m.Meta.ToWorld(gridmap.Point{}), m.Meta.ToWorld(corner))
}
