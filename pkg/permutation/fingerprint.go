// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package permutation

import (
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zkvm/pkg/lookup"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// Fingerprints assigns each interaction channel its fingerprint element: the
// table [α¹ .. αⁿ] where n is one past the largest argument index referenced
// by the given sends and receives.  Since the table is a pure function of the
// challenge, interactions sharing an argument index fingerprint identically
// regardless of which chip declared them.
func Fingerprints[F field.Element[F], E field.Extension[E, F]](
	sends, receives []lookup.Interaction[F], alpha E) []E {
	var (
		channels = lookup.Channels(sends, receives)
		n        = channels.Width()
	)
	//
	if n == 0 {
		return nil
	}
	// Gaps in the argument-index space are harmless, but waste one challenge
	// power apiece.
	if gaps := channels.Gaps(); len(gaps) > 0 {
		log.Debugf("fingerprint table wastes %d of %d challenge powers (unused channels %v)",
			len(gaps), n, gaps)
	}
	// Skip α⁰, so that distinct channels always receive distinct powers.
	return field.Powers(alpha, n+1)[1:]
}
