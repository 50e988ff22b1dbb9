/*
 * Copyright © 2026, panicqr authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package capture

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grkuntzmd/panicqr/internal/config"
)

// fakeCompressor "compresses" by copying src verbatim, cut to its first
// shrinkTo bytes when shrinkTo is positive, so output sizes are known
// exactly and the driver's fits are deterministic.
type fakeCompressor struct{ shrinkTo int }

func (f fakeCompressor) Compress(dst, src []byte) ([]byte, error) {
	n := len(src)
	if f.shrinkTo > 0 && n > f.shrinkTo {
		n = f.shrinkTo
	}
	return append(dst, src[:n]...), nil
}

type fakeBlitter struct{ fills int }

func (f *fakeBlitter) FillRect(x, y, w, h int, color uint32) error { f.fills++; return nil }
func (f *fakeBlitter) Width() int                                  { return 1024 }
func (f *fakeBlitter) Height() int                                 { return 768 }

type fixedKmsg struct{ data []byte }

func (k fixedKmsg) Drain(buf []byte) (int, error) {
	return copy(buf, k.data), nil
}

type oneShotNotifier struct {
	fired bool
}

func (o *oneShotNotifier) Wait(ctx context.Context) error {
	if o.fired {
		<-ctx.Done()
		return ctx.Err()
	}
	o.fired = true
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Version:          10,
		CompressionLevel: 3,
		FrameDelay:       0,
		ModulePixels:     1,
	}
}

func TestDriveSessionConsumesWholeLog(t *testing.T) {
	logger := zap.NewNop()
	blitter := &fakeBlitter{}
	comp := fakeCompressor{shrinkTo: 50}
	c := New(testConfig(), logger, comp, blitter, fixedKmsg{}, 4096)

	log := make([]byte, 500)
	for i := range log {
		log[i] = byte('a' + i%26)
	}

	c.driveSession(uuid.New(), log)
	assert.Greater(t, blitter.fills, 0)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	logger := zap.NewNop()
	blitter := &fakeBlitter{}
	comp := fakeCompressor{shrinkTo: 50}
	kmsg := fixedKmsg{data: []byte("panic: everything is fine\n")}
	c := New(testConfig(), logger, comp, blitter, kmsg, 4096)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Run(ctx, &oneShotNotifier{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
