package rejson

import (
	"strings"
	"testing"

	rejsonerrors "rejson/rejson/errors"
)

func Test_assertNotError_AcceptsPlainReplies(t *testing.T) {
	expectNoError(t, assertNotError("OK"))
	expectNoError(t, assertNotError(`{"a":1}`))
}

func Test_assertNotError_StripsTheSentinelPrefix(t *testing.T) {
	err := assertNotError("-ERR wrong number of arguments")

	expectErrorIs(t, err, rejsonerrors.ErrorServerReply)
	if !strings.HasSuffix(err.Error(), "wrong number of arguments") {
		t.Errorf("expect message without prefix, got: %v", err)
	}
}

func Test_assertNotError_BareSentinelHasEmptyMessage(t *testing.T) {
	for _, reply := range []string{"-ERR", "-ERR "} {
		err := assertNotError(reply)

		expectErrorIs(t, err, rejsonerrors.ErrorServerReply)
		if !strings.HasSuffix(err.Error(), ": ") {
			t.Errorf("expect empty message for %q, got: %v", reply, err)
		}
	}
}

func Test_assertStatusOK(t *testing.T) {
	expectNoError(t, assertStatusOK("OK"))
	expectErrorIs(t, assertStatusOK("QUEUED"), rejsonerrors.ErrorUnexpectedReply)
	expectErrorIs(t, assertStatusOK("-ERR busy"), rejsonerrors.ErrorServerReply)
}

func Test_decodeDocument_RejectsMalformedJSON(t *testing.T) {
	_, err := decodeDocument(`{"a":`)

	expectErrorIs(t, err, rejsonerrors.ErrorDecode)
}

func Test_decodeDocument_NilBulkDecodesToNil(t *testing.T) {
	document, err := decodeDocument("")

	expectNoError(t, err)
	if document != nil {
		t.Errorf("expect nil document, got: %+v", document)
	}
}

func Test_decodeKind_IsTotalOverKnownKinds(t *testing.T) {
	kinds := []struct {
		reply string
		kind  ValueKind
	}{
		{"null", KindNone},
		{"boolean", KindBool},
		{"integer", KindInt},
		{"number", KindFloat},
		{"string", KindString},
		{"object", KindObject},
		{"array", KindArray},
	}

	for _, testCase := range kinds {
		kind, err := decodeKind(testCase.reply)
		expectNoError(t, err)
		expectEqual(t, testCase.kind, kind)
	}
}

func Test_decodeKind_RejectsUnknownKind(t *testing.T) {
	_, err := decodeKind("tuple")

	expectErrorIs(t, err, rejsonerrors.ErrorUnexpectedReply)
}

func Test_verifyExpiryResults(t *testing.T) {
	expectNoError(t, verifyExpiryResults([]any{[]byte("OK"), int64(1)}))

	// redigo surfaces the queued SET status as a string after EXEC
	expectNoError(t, verifyExpiryResults([]any{"OK", int64(1)}))

	expectErrorIs(t,
		verifyExpiryResults([]any{[]byte("OK")}),
		rejsonerrors.ErrorTransaction)
	expectErrorIs(t,
		verifyExpiryResults([]any{[]byte("NOPE"), int64(1)}),
		rejsonerrors.ErrorSetFailed)
	expectErrorIs(t,
		verifyExpiryResults([]any{int64(1), int64(1)}),
		rejsonerrors.ErrorSetFailed)
	expectErrorIs(t,
		verifyExpiryResults([]any{[]byte("OK"), int64(0)}),
		rejsonerrors.ErrorExpireFailed)
}
