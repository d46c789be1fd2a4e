package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"dora-eats/internal/checkout"
	"dora-eats/internal/models"
)

func readFields(path string) (models.Fields, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open form file")
	}
	var f models.Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "decode form file")
	}
	return f, nil
}

// lint prints either the normalized order or one line per violated field and
// reports whether the form passed.
func lint(w io.Writer, v *checkout.Validator, fields models.Fields) bool {
	req, errs := v.Validate(fields)
	if errs != nil {
		for _, fe := range errs.List() {
			fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message)
		}
		return false
	}

	out, err := json.MarshalIndent(req.Redacted(), "", "  ")
	if err != nil {
		fmt.Fprintf(w, "encode order: %v\n", err)
		return false
	}
	fmt.Fprintf(w, "%s\n", out)
	return true
}
