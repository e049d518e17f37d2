// Package main demonstrates single and multiple choice questions.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/inquiry"
)

func main() {
	regions := []string{
		"us-east-1", "us-east-2", "us-west-1", "us-west-2",
		"eu-west-1", "eu-central-1", "ap-northeast-1", "ap-southeast-1",
	}

	sel, err := inquiry.NewSelect("Region:", regions)
	if err != nil {
		log.Fatal(err)
	}
	region, err := sel.WithPageSize(5).Prompt()
	if err != nil {
		if errors.Is(err, inquiry.ErrOperationCanceled) {
			return
		}
		log.Fatal(err)
	}

	ms, err := inquiry.NewMultiSelect("Services:", []string{"compute", "storage", "database", "queue", "cache"})
	if err != nil {
		log.Fatal(err)
	}
	services, err := ms.
		WithDefault(0).
		WithValidator(inquiry.MinSelections(1, "select at least one service")).
		Prompt()
	if err != nil {
		if errors.Is(err, inquiry.ErrOperationCanceled) {
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Deploying %d services to %s\n", len(services), region.Value)
}
