package transport

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// authorizationHeader builds the Authorization header value for a
// WWW-Authenticate challenge. Only Basic and Digest (qop=auth) are
// supported, which covers every CUPS configuration in practice.
func authorizationHeader(challenge string, creds Credentials, method, uri string) (string, error) {
	scheme, params := splitChallenge(challenge)

	switch strings.ToLower(scheme) {
	case "basic":
		token := base64.StdEncoding.EncodeToString([]byte(creds.User + ":" + creds.Password))
		return "Basic " + token, nil

	case "digest":
		return digestAuthorization(params, creds, method, uri)

	default:
		return "", fmt.Errorf("unsupported authentication scheme %q", scheme)
	}
}

func splitChallenge(challenge string) (scheme string, params map[string]string) {
	fields := strings.SplitN(strings.TrimSpace(challenge), " ", 2)
	scheme = fields[0]
	params = map[string]string{}
	if len(fields) < 2 {
		return scheme, params
	}

	for _, part := range strings.Split(fields[1], ",") {
		part = strings.TrimSpace(part)
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		params[strings.TrimSpace(kv[0])] = strings.Trim(strings.TrimSpace(kv[1]), `"`)
	}
	return scheme, params
}

// digestAuthorization implements RFC 2617 Digest auth with qop=auth,
// MD5 only — the scheme CUPS actually offers.
func digestAuthorization(params map[string]string, creds Credentials, method, uri string) (string, error) {
	realm := params["realm"]
	nonce := params["nonce"]
	if nonce == "" {
		return "", fmt.Errorf("digest challenge missing nonce")
	}

	qop := "auth"
	if v := params["qop"]; v != "" {
		qop = strings.TrimSpace(strings.Split(v, ",")[0])
	}

	cnonce, err := randomHex(8)
	if err != nil {
		return "", err
	}
	nc := "00000001"

	ha1 := md5Hex(creds.User + ":" + realm + ":" + creds.Password)
	ha2 := md5Hex(method + ":" + uri)

	var response string
	if qop != "" {
		response = md5Hex(strings.Join([]string{ha1, nonce, nc, cnonce, qop, ha2}, ":"))
	} else {
		response = md5Hex(ha1 + ":" + nonce + ":" + ha2)
	}

	header := fmt.Sprintf(
		`Digest username="%s", realm="%s", nonce="%s", uri="%s", response="%s", nc=%s, cnonce="%s"`,
		creds.User, realm, nonce, uri, response, nc, cnonce,
	)
	if qop != "" {
		header += fmt.Sprintf(`, qop=%s`, qop)
	}
	if opaque := params["opaque"]; opaque != "" {
		header += fmt.Sprintf(`, opaque="%s"`, opaque)
	}

	return header, nil
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
