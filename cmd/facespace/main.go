package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/smasonuk/facespace"
)

// recording is the on-disk form of a tracking session: the mesh topology and
// the frames captured against it.
type recording struct {
	Indices []int                 `json:"indices"`
	Frames  []facespace.FaceFrame `json:"frames"`
}

type output struct {
	Indices []int                `json:"indices"`
	Frames  []facespace.FaceData `json:"frames"`
	Skipped int                  `json:"skipped"`
}

func main() {
	configFile := flag.String("config", "", "TOML sensor config (defaults to nominal Kinect v1 values)")
	framesFile := flag.String("frames", "", "JSON recording of face frames")
	outFile := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *framesFile == "" {
		log.Fatalf("-frames is required")
	}

	cfg := facespace.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = facespace.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	rec, err := loadRecording(*framesFile)
	if err != nil {
		log.Fatalf("Error loading frames: %v", err)
	}

	topology, err := facespace.NewTopology(rec.Indices)
	if err != nil {
		log.Fatalf("Error building topology: %v", err)
	}
	log.Printf("Topology: %d triangles over %d vertices", topology.TriangleCount(), topology.VertexCount())

	proc, err := cfg.NewProcessor(topology, facespace.WithLogger(log.Default()))
	if err != nil {
		log.Fatalf("Error creating processor: %v", err)
	}

	data, skipped := proc.ProcessAll(rec.Frames)
	log.Printf("Processed %d frames, skipped %d", len(data), skipped)

	var w io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("Error creating %s: %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}

	if err := writeOutput(w, output{Indices: topology.Indices(), Frames: data, Skipped: skipped}); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
}

func loadRecording(fileName string) (*recording, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open recording %s: %w", fileName, err)
	}
	defer file.Close()

	return decodeRecording(file)
}

func decodeRecording(r io.Reader) (*recording, error) {
	rec := &recording{}
	if err := json.NewDecoder(r).Decode(rec); err != nil {
		return nil, fmt.Errorf("decoding recording: %w", err)
	}
	return rec, nil
}

func writeOutput(w io.Writer, out output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
