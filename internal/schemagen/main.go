// Command schemagen writes the JSON schema for the scrollview configuration.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/macropower/scrollview/pkg/config"
	"github.com/macropower/scrollview/pkg/ui"
)

const modulePath = "github.com/macropower/scrollview"

var (
	outFile = flag.String("o", "schema.json", "Output file for the generated schema")
	rootDir = flag.String("root", "../..", "Path to the module root, used to read doc comments")
)

func main() {
	flag.Parse()

	r := &jsonschema.Reflector{
		Namer:  typeName,
		Mapper: mapType,
	}

	err := r.AddGoComments(modulePath, *rootDir)
	if err != nil {
		log.Fatalf("read go comments: %v", err)
	}

	js := r.Reflect(config.NewConfig())
	js.ID = jsonschema.ID("https://" + modulePath + "/pkg/config/config")

	jsData, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, append(jsData, '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}

// typeName keeps the two Config types apart in $defs.
func typeName(t reflect.Type) string {
	if t == reflect.TypeFor[ui.Config]() {
		return "UIConfig"
	}

	return t.Name()
}

// mapType describes durations the way they are written in YAML.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t == reflect.TypeFor[time.Duration]() {
		return &jsonschema.Schema{Type: "string"}
	}

	return nil
}
