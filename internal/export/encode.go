// SPDX-License-Identifier: MPL-2.0

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/selcolors/selcolors/internal/config"
	"github.com/selcolors/selcolors/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode serializes r in the given format.
func Encode(r Report, format config.ExportFormat) ([]byte, error) {
	if ok, errs := format.IsValid(); !ok {
		return nil, errs[0]
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case config.ExportJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case config.ExportYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(r)
		if err == nil {
			err = enc.Close()
		}
	case config.ExportTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		err = enc.Encode(r)
	case config.ExportCUE:
		var out []byte
		out, err = cueutil.Encode(r)
		buf.Write(out)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Write encodes r and writes it to w.
func Write(w io.Writer, r Report, format config.ExportFormat) error {
	data, err := Encode(r, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
