// Package rtsem is internal: it exists solely to back the queue in the
// parent module and is not meant for standalone use outside it.
package rtsem
