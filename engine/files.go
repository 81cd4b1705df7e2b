package engine

import (
	"bytes"
	"fmt"
	"os"
)

// RunFiles runs one decision between a state file and an action file. The
// action file is only created once a move has been chosen.
func (e *Engine) RunFiles(statePath, actionPath string) error {
	in, err := os.Open(statePath)
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}
	defer in.Close()

	var out bytes.Buffer
	if err := e.Run(in, &out); err != nil {
		return err
	}
	if err := os.WriteFile(actionPath, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write action file: %w", err)
	}
	return nil
}
