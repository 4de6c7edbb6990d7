// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import "github.com/gofrs/uuid"

// ReceiverID identifies a registered Receiver for the lifetime of a
// Dispatcher process. It has no meaning across processes or restarts.
type ReceiverID = uuid.UUID

func newReceiverID() ReceiverID {
	return uuid.Must(uuid.NewV4())
}
