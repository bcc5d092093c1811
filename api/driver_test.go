package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/esobox/api"
	"github.com/sarchlab/esobox/core"
)

var _ = Describe("Driver", func() {
	var (
		engine sim.Engine
		driver api.Driver
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		driver = api.MakeDriverBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Driver")
		out = new(bytes.Buffer)
	})

	It("should refuse to run before a program is loaded", func() {
		_, err := driver.Run()

		Expect(err).To(MatchError(api.ErrNotLoaded))
	})

	It("should run a straight-line program in one block", func() {
		Expect(driver.Load("+++.", nil, out)).To(Succeed())

		res, err := driver.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Blocks).To(Equal(uint64(1)))
		Expect(out.Bytes()).To(Equal([]byte{3}))
	})

	It("should count one block per loop iteration", func() {
		Expect(driver.Load("+++[-]", nil, out)).To(Succeed())

		res, err := driver.Run()

		// entry, three body passes, exit
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Blocks).To(Equal(uint64(5)))
		Expect(driver.State().Halted).To(BeTrue())
	})

	It("should produce the same output as a direct run", func() {
		source := "+[[-<]-[->]<-]<.<<<<.>>>>-.<<-.<.>>.<<<+++.>>>---.<++."
		direct := new(bytes.Buffer)
		Expect(core.Run(source, nil, direct, core.RingTape)).To(Succeed())

		Expect(driver.Load(source, nil, out)).To(Succeed())
		_, err := driver.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal(direct.String()))
		Expect(out.String()).To(Equal("brainfuck"))
	})

	It("should read input through the machine", func() {
		Expect(driver.Load(",[.,]", strings.NewReader("echo\x00"), out)).To(Succeed())

		_, err := driver.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("echo"))
	})

	It("should return syntax errors from Load", func() {
		err := driver.Load("[[]", nil, out)

		Expect(core.IsSyntaxError(err)).To(BeTrue())
		_, err = driver.Run()
		Expect(err).To(MatchError(api.ErrNotLoaded))
	})

	It("should stop on a fault and keep the output written so far", func() {
		d := api.MakeDriverBuilder().
			WithTape(core.Tape{Length: 2, Policy: core.BoundsChecked}).
			Build("Strict")

		Expect(d.Load("+.[>+.]", nil, out)).To(Succeed())
		res, err := d.Run()

		Expect(core.IsOutOfBounds(err)).To(BeTrue())
		Expect(out.Bytes()).To(Equal([]byte{1, 1}))
		Expect(res.Blocks).To(Equal(uint64(2)))
		Expect(d.State().Cursor).To(Equal(1))
	})

	Context("tracing", func() {
		var (
			logs     *bytes.Buffer
			previous *slog.Logger
		)

		BeforeEach(func() {
			logs = new(bytes.Buffer)
			previous = slog.Default()
			slog.SetDefault(slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{
				Level: api.LevelTrace,
			})))
		})

		AfterEach(func() {
			slog.SetDefault(previous)
		})

		It("should trace every tick and the halt", func() {
			Expect(driver.Load("+[-]", nil, out)).To(Succeed())
			_, err := driver.Run()
			Expect(err).NotTo(HaveOccurred())

			var msgs []string
			for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
				var rec map[string]any
				Expect(json.Unmarshal([]byte(line), &rec)).To(Succeed())
				msgs = append(msgs, rec["msg"].(string))
			}

			Expect(msgs).To(Equal([]string{"Load", "Tick", "Tick", "Tick", "Halt"}))
		})
	})
})
