/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Various constants
 */

package ipp

// ContentType is the HTTP Content-Type / Accept value used for every
// IPP request and response body.
const ContentType = "application/ipp"
