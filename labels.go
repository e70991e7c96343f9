package hardhat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Label is the class name a detection model assigns to a prediction
type Label string

const (
	// LabelWorker is a person on site
	LabelWorker Label = "worker"
	// LabelHeadWithHelmet is a head wearing a hard hat
	LabelHeadWithHelmet Label = "head_in_hh"
	// LabelHeadWithoutHelmet is a bare head
	LabelHeadWithoutHelmet Label = "head_wout_hh"
)

// IsHead reports whether the label is one of the head classes
func (l Label) IsHead() bool {
	return l == LabelHeadWithHelmet || l == LabelHeadWithoutHelmet
}

// LoadLabels reads the labels file the Model was trained with, see ReadLabels
func LoadLabels(file string) ([]Label, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	return ReadLabels(f)
}

// ReadLabels reads one label per line, the line number being the class index
// the Model outputs.  Lines are trimmed and blank lines at the end of the input
// are dropped, blank lines in between keep their class index
func ReadLabels(r io.Reader) ([]Label, error) {

	scanner := bufio.NewScanner(r)

	var labels []Label

	for scanner.Scan() {
		labels = append(labels, Label(strings.TrimSpace(scanner.Text())))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading labels: %w", err)
	}

	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}

	return labels, nil
}
