package geo

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hanc4-git/B1/format"
)

const (
	argumentWidth          = 10
	argumentsPerLine       = 6
	constructionsPerLine   = 9
	zoneToMaterialsPerLine = 14
	defaultTitle           = "xxxxxxxxxxxxxxxxxxxxxxxxxxxxNAMExxxxxxxxxxxxxxxxxxxxxxxxxxxx"
)

// Serialize renders geo.dat.
func Serialize(geometry Geometry) string {
	writer := &bytes.Buffer{}

	title := geometry.Title
	if title == "" {
		title = defaultTitle
	}
	fmt.Fprintf(writer, "%5d%5d%10s%s\n", 0, 0, "", title)

	for _, body := range geometry.Bodies {
		serializeBody(writer, body)
	}
	fmt.Fprintf(writer, "%5s\n", "END")

	for _, zone := range geometry.Zones {
		serializeZone(writer, zone)
	}
	fmt.Fprintf(writer, "%5s\n", "END")

	zoneIDs := []int64{}
	materialIDs := []int64{}
	for _, pair := range geometry.ZoneToMaterialPairs {
		zoneIDs = append(zoneIDs, int64(pair.ZoneID))
		materialIDs = append(materialIDs, int64(pair.MaterialID))
	}
	serializeIntColumns(writer, zoneIDs)
	serializeIntColumns(writer, materialIDs)

	return writer.String()
}

func serializeBody(writer io.Writer, body Body) {
	fmt.Fprintf(writer, "%5s%5d", body.Identifier, body.ID)
	for i := 0; i == 0 || i < len(body.Arguments); i += argumentsPerLine {
		if i > 0 {
			fmt.Fprintf(writer, "%10s", "")
		}
		for j := i; j < i+argumentsPerLine; j++ {
			if j < len(body.Arguments) {
				writer.Write([]byte(format.FloatToFixedWidthString(body.Arguments[j], argumentWidth)))
			} else {
				writer.Write([]byte(strings.Repeat(" ", argumentWidth)))
			}
		}
		fmt.Fprintln(writer)
	}
}

func serializeZone(writer io.Writer, zone Zone) {
	fmt.Fprintf(writer, "%5s%5d", zone.Name, zone.ID)
	for i, construction := range zone.Constructions {
		if i > 0 && i%constructionsPerLine == 0 {
			fmt.Fprintf(writer, "\n%5s%5d", "", zone.ID)
		}
		fmt.Fprintf(writer, "%2s%5s",
			construction.Operation,
			fmt.Sprintf("%s%d", construction.Sign, construction.BodyID))
	}
	fmt.Fprintln(writer)
}

func serializeIntColumns(writer io.Writer, values []int64) {
	for i, value := range values {
		writer.Write([]byte(format.IntToFixedWidthString(value, 5)))
		if (i+1)%zoneToMaterialsPerLine == 0 || i == len(values)-1 {
			fmt.Fprintln(writer)
		}
	}
}
