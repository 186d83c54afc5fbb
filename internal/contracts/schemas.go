package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы
	// Это нужно, чтобы схемы могли ссылаться друг на друга через `$ref`
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := schemasFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {

			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
			log.Printf("Successfully compiled and registered schema: %s -> %s", path, key)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "schemas/create-ad/v1.json"
// в ключ вида "CreateAdRequest/1.0.0".
func generateKeyFromPath(path string) string {

	trimmedPath := strings.TrimPrefix(path, "schemas/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return "" // Некорректный путь, возвращаем пустой ключ
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[0], "-")
	var nameBuilder strings.Builder
	for _, p := range nameParts {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString("Request")
	requestName := nameBuilder.String()

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", requestName, version)
}

// ValidateRequest принимает тело запроса и его метаданные и проверяет по схеме
func ValidateRequest(requestType, requestVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", requestType, requestVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for request '%s' version '%s' not found", requestType, requestVersion)
	}

	// Распарсить JSON в универсальный тип interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	// Валидировать уже распарсенные данные
	if err := schema.Validate(v); err != nil {
		// Возвращаем подробную ошибку валидации
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

// ValidateCreateAd проверяет тело запроса создания объявления.
func ValidateCreateAd(body []byte) error {
	return ValidateRequest("CreateAdRequest", "1.0.0", body)
}
