// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	left         key.Binding
	right        key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	about        key.Binding
	signOut      key.Binding
	switchPage   key.Binding
	switchFolder key.Binding
	newSubfolder key.Binding
	addField     key.Binding
	removeField  key.Binding
	save         key.Binding
	deleteRow    key.Binding
	copy         key.Binding
	yes          key.Binding
	no           key.Binding
}

// Editor keys use ctrl chords so plain letters reach the text inputs.
var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up")),
	down:         key.NewBinding(key.WithKeys("down")),
	left:         key.NewBinding(key.WithKeys("left")),
	right:        key.NewBinding(key.WithKeys("right")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("ctrl+c")),
	about:        key.NewBinding(key.WithKeys("f1")),
	signOut:      key.NewBinding(key.WithKeys("ctrl+o")),
	switchPage:   key.NewBinding(key.WithKeys("ctrl+w")),
	switchFolder: key.NewBinding(key.WithKeys("ctrl+t")),
	newSubfolder: key.NewBinding(key.WithKeys("ctrl+n")),
	addField:     key.NewBinding(key.WithKeys("ctrl+a")),
	removeField:  key.NewBinding(key.WithKeys("ctrl+r")),
	save:         key.NewBinding(key.WithKeys("ctrl+s")),
	deleteRow:    key.NewBinding(key.WithKeys("d", "delete")),
	copy:         key.NewBinding(key.WithKeys("ctrl+y")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n")),
}
