package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/future-architect/ngram"
	"github.com/invopop/jsonschema"
)

func __FILE__() string {
	_, filepath, _, _ := runtime.Caller(1)
	return filepath
}

func __DIR__() string {
	return filepath.Dir(__FILE__())
}

func gen(fileName string, target interface{}) error {
	prjPath := filepath.Join(__DIR__(), "../../", fileName)
	fmt.Printf("writing: %s\n", prjPath)
	prj, err := os.Create(prjPath)
	if err != nil {
		return err
	}
	defer prj.Close()
	e := json.NewEncoder(prj)
	e.SetIndent("", "  ")
	return e.Encode(schema(target))
}

// schema reflects target; fields tagged omitempty are optional.
func schema(target interface{}) *jsonschema.Schema {
	return jsonschema.Reflect(target)
}

func main() {
	if err := gen("record-schema.json", &ngram.DocumentRecord{}); err != nil {
		fmt.Fprintf(os.Stderr, "schema error: %s\n", err.Error())
		os.Exit(1)
	}
}
