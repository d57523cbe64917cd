package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const redSuffix = "_red"

// inputRoot strips the mandatory ".fft" suffix from path.
func inputRoot(path string) (string, error) {
	root, ok := strings.CutSuffix(path, ".fft")
	if !ok || root == "" {
		return "", fmt.Errorf("input file %q must be a fourier transform (.fft)", path)
	}
	return root, nil
}

// outputPaths names the whitened spectrum and its sidecar.
type outputPaths struct {
	Name     string // data name stored in the new sidecar
	FFT      string
	Inf      string
	Fallback bool // written to the working directory
}

// planOutputs derives output names from the data name recorded in the
// input sidecar. When the directory of that name does not exist the outputs
// go to the working directory instead.
func planOutputs(root, dataName string) outputPaths {
	var p outputPaths
	if _, err := os.Stat(filepath.Dir(dataName)); err != nil {
		p.Name = filepath.Base(root) + redSuffix
		p.Fallback = true
	} else {
		p.Name = dataName + redSuffix
	}
	p.FFT = p.Name + ".fft"
	p.Inf = p.Name + ".inf"
	return p
}
