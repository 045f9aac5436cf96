package sensor

import (
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/logger"
)

const (
	// DefaultVcioPath is the VideoCore character device
	DefaultVcioPath = "/dev/vcio"
	// DefaultSensorID selects the SoC temperature sensor
	DefaultSensorID = uint32(0)

	// Property interface tags
	tagGetFirmwareRevision = 0x00000001
	tagGetBoardModel       = 0x00010001
	tagGetBoardRevision    = 0x00010002
	tagGetTemperature      = 0x00030006

	respSuccess = 0x80000000
)

// _IOWR(100, 0, char *): the vcio property ioctl request
var mboxIoctl = uintptr(3<<30 | unsafe.Sizeof(uintptr(0))<<16 | 100<<8)

// Mailbox reads the SoC temperature through the VideoCore firmware
// property interface. The firmware reports millidegrees.
type Mailbox struct {
	file     *os.File
	sensorID uint32
}

// NewMailbox opens the vcio device and logs the firmware and board
// identity of the machine it is talking to
func NewMailbox(vcioPath string, sensorID uint32) (*Mailbox, error) {
	errFactory := errors.New()

	file, err := os.OpenFile(vcioPath, os.O_RDWR, 0)
	if err != nil {
		return nil, errFactory.Wrap(ErrOpenFailed, err)
	}

	m := &Mailbox{
		file:     file,
		sensorID: sensorID,
	}

	if rev, _, err := m.property(tagGetFirmwareRevision, 0); err == nil {
		date := time.Unix(int64(rev), 0).UTC()
		logger.Info().Msgf("Firmware revision: %s", date.Format("Jan _2 2006 15:04:05"))
	}
	if model, _, err := m.property(tagGetBoardModel, 0); err == nil {
		logger.Info().Msgf("Board model: 0x%08x", model)
	}
	if rev, _, err := m.property(tagGetBoardRevision, 0); err == nil {
		logger.Info().Msgf("Board revision: 0x%08x", rev)
	}

	return m, nil
}

// ReadTemperature returns the SoC temperature in degrees C
func (m *Mailbox) ReadTemperature() (float64, error) {
	errFactory := errors.New()

	// The temperature tag answers with (sensor id, millidegrees)
	_, milli, err := m.property(tagGetTemperature, m.sensorID)
	if err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	return float64(milli) / 1000.0, nil
}

func (m *Mailbox) Close() error {
	return m.file.Close()
}

// property issues a single-tag firmware property request and returns the
// two words of the tag's value buffer
func (m *Mailbox) property(tag, arg uint32) (uint32, uint32, error) {
	errFactory := errors.New()

	// size, request code, tag, value buffer size, tag request code,
	// two value words, end tag
	buf := [8]uint32{
		8 * 4,
		0,
		tag,
		2 * 4,
		0,
		arg,
		0,
		0,
	}

	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		m.file.Fd(),
		mboxIoctl,
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if errno != 0 {
		return 0, 0, errFactory.Wrap(ErrPropertyFailed, errno)
	}

	if buf[1] != respSuccess {
		return 0, 0, errFactory.WithData(ErrPropertyFailed, buf[1])
	}

	return buf[5], buf[6], nil
}
