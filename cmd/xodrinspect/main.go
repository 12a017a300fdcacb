package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nav-stack/xodr"
)

var (
	xodrFileName = flag.String("file", "my_map.xodr", "Filename of *.xodr file to ingest")
	lax          = flag.Bool("lax", false, "Drop warning-class issues (unexpected attributes/elements) from the report entirely")
	geomFormat   = flag.String("geomf", "", "If set to wkt/geojson, print every lane section's center-line polylines in that format")
)

func main() {
	flag.Parse()

	result, err := xodr.NewParser(
		xodr.WithFilePath(*xodrFileName),
		xodr.WithLaxMode(*lax),
	).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := result.Map
	fmt.Printf("Roads: %d | Junctions: %d | Lanes: %d | GeoReference: %t\n", len(m.Roads), len(m.Junctions), m.TotalNumLanes(), m.HasGeoReference())

	reportErrors(m, result.Errors)

	if *geomFormat != "" {
		printGeometry(m, *geomFormat)
	}
}

func reportErrors(m *xodr.XodrMap, errs xodr.Errors) {
	if len(errs) == 0 {
		fmt.Println("No issues found.")
		return
	}
	for _, class := range []xodr.InvalidationClass{xodr.ClassAll, xodr.ClassConnectivity, xodr.ClassGeometry, xodr.ClassNone} {
		byClass := errs.Filter(class)
		if len(byClass) == 0 {
			continue
		}
		fmt.Printf("-- %s (%d) --\n", class, len(byClass))
		for _, e := range byClass {
			fmt.Println(e.Description(m))
		}
	}
}

func printGeometry(m *xodr.XodrMap, format string) {
	for _, road := range m.Roads {
		refLineTess := road.ReferenceLine.Tessellate(0, road.Length)
		for secIdx, sec := range road.LaneSections {
			_, centers := sec.TessellateLaneBoundaryCurvesAndCenterLines(refLineTess)
			for i, c := range centers {
				laneID := sec.LaneIndexToId(i)
				label := fmt.Sprintf("road=%s section=%d lane=%d", road.ID, secIdx, laneID)
				switch format {
				case "geojson":
					fmt.Printf("%s %s\n", label, xodr.GeoJSONLineString(c.Vertices))
				default:
					fmt.Printf("%s %s\n", label, xodr.WKTLineString(c.Vertices))
				}
			}
		}
	}
}
