package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadNetwork parses the station network document:
//
//	{"stations": {"<name>": {"name", "line_codes", "coords": {"lat", "lon"}}},
//	 "edges": {"<name>": [{"to", "distance", "line"}]}}
func ReadNetwork(r io.Reader) (*Network, error) {
	network := NewNetwork()
	if err := json.NewDecoder(r).Decode(network); err != nil {
		return nil, fmt.Errorf("decode network: %w", err)
	}
	if network.Stations == nil {
		network.Stations = make(map[string]Station)
	}
	if network.Edges == nil {
		network.Edges = make(map[string][]Edge)
	}
	return network, nil
}

func ReadNetworkFile(filename string) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open network file: %w", err)
	}
	defer file.Close()
	return ReadNetwork(file)
}

func (n *Network) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(n); err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	return nil
}

func (n *Network) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create network file: %w", err)
	}
	defer file.Close()
	return n.Write(file)
}
