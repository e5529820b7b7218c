package templates

import "sort"

// License is a short representative license text with {year} and {author}
// placeholders.
type License struct {
	ID   string
	Text string
}

// Render substitutes the year and author into the license text.
func (l License) Render(year, author string) (string, error) {
	return Substitute(l.Text, Context{"year": year, "author": author})
}

// GetLicense returns the license for an identifier, reporting whether it
// exists.
func GetLicense(id string) (License, bool) {
	text, ok := licenses[id]
	if !ok {
		return License{}, false
	}
	return License{ID: id, Text: text}, true
}

// LicenseIDs returns all known license identifiers, sorted.
func LicenseIDs() []string {
	ids := make([]string, 0, len(licenses))
	for id := range licenses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// licenses maps license identifiers to their text patterns.
var licenses = map[string]string{
	"MIT": `MIT License

Copyright (c) {year} {author}

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction...
`,
	"Apache-2.0": `Apache License 2.0

Copyright (c) {year} {author}

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License...
`,
	"GPL-3.0": `GNU GENERAL PUBLIC LICENSE Version 3

Copyright (C) {year} {author}

This program is free software: you can redistribute it and/or modify...
`,
	"BSD-2-Clause": `BSD 2-Clause License

Copyright (c) {year}, {author}

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met...
`,
	"BSD-3-Clause": `BSD 3-Clause License

Copyright (c) {year}, {author}

Redistribution and use in source and binary forms (with or without
modification) are permitted provided that the following conditions are met...
`,
	"MPL-2.0": `Mozilla Public License 2.0

Copyright (c) {year} {author}

This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at http://mozilla.org/MPL/2.0/
`,
	"LGPL-3.0": `GNU LESSER GENERAL PUBLIC LICENSE Version 3

Copyright (C) {year} {author}

This library is free software; you can redistribute it and/or
modify it under the terms of the GNU Lesser General Public
License as published by the Free Software Foundation...
`,
	"Unlicense": `This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or
distribute this software, either in source code form or as a compiled
binary, for any purpose, commercial or non-commercial, and by any means.
`,
	"CC0-1.0": `CC0 1.0 Universal (Public Domain Dedication)

The person who associated a work with this deed has dedicated the work to
the public domain by waiving all of his or her rights to the work worldwide
under copyright law, including all related and neighboring rights, to the
extent allowed by law.
`,
}
