package llm

import "fmt"

// Informational chunk text shown in place of model output. Mongolian, like
// the rest of the user-facing surface.
const (
	// MsgMissingCredential reports that no API key was found in the
	// environment or supplied interactively.
	MsgMissingCredential = "⚠️ API түлхүүр оруулаагүй байна. Орчны хувьсагч эсвэл --api-key тугаар түлхүүрээ оруулна уу.\n"
)

// msgClientUnavailable reports that the selected provider could not be
// configured at all.
func msgClientUnavailable(provider string, err error) string {
	return fmt.Sprintf("⚠️ %s клиентийг тохируулж чадсангүй: %v\n", provider, err)
}

// msgUnknownProvider reports an unrecognized provider name.
func msgUnknownProvider(provider string) string {
	return fmt.Sprintf("⚠️ Танигдахгүй провайдер: %q\n", provider)
}

// faultChunk renders a transport fault as the final chunk of a stream.
func faultChunk(err error) string {
	return fmt.Sprintf("\n\n❌ Алдаа: %v", err)
}
