// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/algolab/algolab/internal/domain"
)

// PromptAlgorithms shows a multi-select form over catalog with selected
// pre-checked and returns the checked algorithms.
func PromptAlgorithms(catalog domain.Catalog, selected []domain.AlgorithmRef) ([]domain.AlgorithmRef, error) {
	var keys []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("◈ Choose algorithms").
				Description("space toggles, ctrl+a selects all, enter runs the benchmark").
				Options(AlgorithmOptions(catalog, selected)...).
				Validate(func(keys []string) error {
					if len(keys) == 0 {
						return domain.ErrEmptySelection
					}

					return nil
				}).
				Value(&keys),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("algorithm form: %w", err)
	}

	refs := make([]domain.AlgorithmRef, 0, len(keys))

	for _, key := range keys {
		ref, err := domain.ParseAlgorithmRef(key)
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

// AlgorithmOptions lists every catalog algorithm as a form option keyed by
// its composite key.
func AlgorithmOptions(catalog domain.Catalog, selected []domain.AlgorithmRef) []huh.Option[string] {
	checked := make(map[domain.AlgorithmRef]bool, len(selected))
	for _, ref := range selected {
		checked[ref] = true
	}

	options := make([]huh.Option[string], 0, catalog.AlgorithmCount())

	for _, group := range catalog {
		for _, algorithm := range group.Algorithms {
			ref := domain.AlgorithmRef{DataStructure: group.Key, Algorithm: algorithm.Key}

			label := group.Name + " · " + algorithm.Name
			if algorithm.TimeComplexity != "" {
				label += "  " + algorithm.TimeComplexity
			}

			options = append(options, huh.NewOption(label, ref.Key()).Selected(checked[ref]))
		}
	}

	return options
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
