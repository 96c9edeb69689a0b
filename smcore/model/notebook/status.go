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
package notebook

// Transitional reports whether an instance in status s is between two
// stable states. Start, stop, update and delete requests are rejected
// by the service while an instance is transitioning.
func (s NotebookInstanceStatus) Transitional() bool {
	switch s {
	case NotebookInstanceStatusPending, NotebookInstanceStatusStopping,
		NotebookInstanceStatusDeleting, NotebookInstanceStatusUpdating:
		return true
	default:
		return false
	}
}
