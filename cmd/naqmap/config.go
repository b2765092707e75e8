// Copyright (C) 2024 The NAQMap Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import "sigs.k8s.io/yaml"

// yamlOrJSON decodes data as YAML into v. Plain JSON is a YAML
// subset, so this also accepts a JSON config file without any
// extra branching, matching how archio loads architectures.
func yamlOrJSON(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}
