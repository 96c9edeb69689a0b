/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package labeling

import "dirpx.dev/smapi/smcore/shape"

// TenthsOfACent returns the whole amount in tenths of a cent. Unset parts
// count as zero.
//
//	NewUSD().WithDollars(1).WithCents(20).WithTenthFractionsOfACent(5) // 1205
func (s *USD) TenthsOfACent() int64 {
	if s == nil {
		return 0
	}
	return int64(shape.Value(s.dollars))*1000 +
		int64(shape.Value(s.cents))*10 +
		int64(shape.Value(s.tenthFractionsOfACent))
}
