package lookup

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scienceol/pubchem/pkg/common/code"
	core "github.com/scienceol/pubchem/pkg/core/compound"
	impl "github.com/scienceol/pubchem/pkg/core/compound/compound"
	"github.com/scienceol/pubchem/pkg/repo"
	"github.com/scienceol/pubchem/pkg/repo/pubchem"
)

// newService 测试中会被替换
var newService = func() core.Service {
	return impl.New(pubchem.NewPubChemRepo())
}

// New 返回查询子命令，所有请求顺序执行并共用同一个客户端，每次请求后固定延迟
func New() []*cobra.Command {
	return []*cobra.Command{
		newCID(),
		newCAS(),
		newProps(),
		newSDF(),
		newFormula(),
		newRecord(),
	}
}

func parseCID(arg string) (repo.CID, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return repo.CIDNotFound, code.ParamErr.WithMsgf("invalid cid %q", arg)
	}
	return repo.CID(n), nil
}

func newCID() *cobra.Command {
	return &cobra.Command{
		Use:   "cid <name>",
		Short: "Resolve a compound name to its PubChem CID (-1 if unknown)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newService().CID(cmd.Context(), &core.NameReq{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.CID)
			return nil
		},
	}
}

func newCAS() *cobra.Command {
	return &cobra.Command{
		Use:   "cas <cid>",
		Short: "Fetch the CAS registry number of a CID (NA if absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := parseCID(args[0])
			if err != nil {
				return err
			}
			resp, err := newService().CAS(cmd.Context(), &core.CIDReq{CID: cid})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.CAS)
			return nil
		},
	}
}

func newProps() *cobra.Command {
	return &cobra.Command{
		Use:   "props <cid>",
		Short: "Fetch canonical SMILES and InChIKey of a CID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := parseCID(args[0])
			if err != nil {
				return err
			}
			resp, err := newService().Properties(cmd.Context(), &core.CIDReq{CID: cid})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", resp.SMILES, resp.InChIKey)
			return nil
		},
	}
}

func newSDF() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sdf <cid>",
		Short: "Download the 2D SDF structure of a CID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := parseCID(args[0])
			if err != nil {
				return err
			}
			sdf, err := newService().SDF(cmd.Context(), &core.CIDReq{CID: cid})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), sdf)
				return err
			}
			return os.WriteFile(output, []byte(sdf), 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the SDF to this file instead of stdout")
	return cmd
}

func newFormula() *cobra.Command {
	return &cobra.Command{
		Use:   "formula <formula>",
		Short: "Search up to five CIDs matching a molecular formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newService().Formula(cmd.Context(), &core.FormulaReq{Formula: args[0]})
			if err != nil {
				return err
			}
			for _, cid := range res.CIDs {
				fmt.Fprintln(cmd.OutOrStdout(), cid)
			}
			if !res.Complete {
				fmt.Fprintf(cmd.ErrOrStderr(), "search %s was still running, results may be incomplete\n", res.ListKey)
			}
			return nil
		},
	}
}

func newRecord() *cobra.Command {
	var withSDF bool
	var sdfDir string
	cmd := &cobra.Command{
		Use:   "record <name>...",
		Short: "Print name,cid,cas,inchikey,smiles for each compound name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()
			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write([]string{"name", "cid", "cas", "inchikey", "smiles"}); err != nil {
				return err
			}
			for _, name := range args {
				record, err := svc.Record(cmd.Context(), &core.RecordReq{Name: name, WithSDF: withSDF})
				if err != nil {
					return err
				}
				if err := w.Write([]string{
					record.Name, record.CID.String(), record.CAS, record.InChIKey, record.SMILES,
				}); err != nil {
					return err
				}

				if withSDF && record.CID.Found() {
					path := filepath.Join(sdfDir, record.CID.String()+".sdf")
					if err := os.WriteFile(path, []byte(record.SDF), 0o644); err != nil {
						return err
					}
				}
			}
			w.Flush()
			return w.Error()
		},
	}
	cmd.Flags().BoolVar(&withSDF, "sdf", false, "also download each structure as <cid>.sdf")
	cmd.Flags().StringVar(&sdfDir, "sdf-dir", ".", "directory for downloaded SDF files")
	return cmd
}
