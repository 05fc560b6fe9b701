package binprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// persistPayloads writes one file per successful outcome into opts.OutputDir,
// named "<stem>.<tag>.decompressed" (spec.md §6). A write failure for one
// outcome is logged onto that Outcome's Error field rather than aborting the
// run; persistence is best-effort.
func persistPayloads(outcomes []Outcome, blob []byte, opts Options) {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return
	}

	stem := opts.OriginalFilename
	if stem == "" {
		stem = "payload"
	}
	stem = strings.TrimSuffix(filepath.Base(stem), filepath.Ext(stem))

	for i := range outcomes {
		o := &outcomes[i]
		if !o.Success {
			continue
		}
		name := fmt.Sprintf("%s.%s.decompressed", stem, o.Method)
		path := filepath.Join(opts.OutputDir, name)
		if err := os.WriteFile(path, o.Payload, 0o644); err != nil {
			o.Error = errors.Wrapf(err, "persist payload for %s", o.Method).Error()
		}
	}
}
